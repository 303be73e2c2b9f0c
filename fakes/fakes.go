package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_instance_client.go ../cloud InstanceClient
//counterfeiter:generate -o ./fake_policy_db.go ../db PolicyDB
//counterfeiter:generate -o ./fake_scalingstate_db.go ../db ScalingStateDB
