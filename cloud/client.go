package cloud

// InstanceClient is the narrow surface of the cloud provider consumed by the
// scaling engine: read an application's desired and actually-running
// instance counts, and write the desired count. Implementations live with
// the concrete cloud integration; the engine only sees this interface.
type InstanceClient interface {
	GetInstanceCount(appId string) (int, error)
	GetRunningInstanceCount(appId string) (int, error)
	SetInstanceCount(appId string, count int) error
}
