package healthendpoint

import (
	"fmt"
	"net/http"
	"os"

	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
	"golang.org/x/crypto/bcrypt"
)

type basicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *basicAuthenticationMiddleware) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()
		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(username)) != nil ||
			bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(password)) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// NewServerWithBasicAuth serves the prometheus metrics endpoint, protected
// by basic auth when credentials are configured.
func NewServerWithBasicAuth(logger lager.Logger, conf models.HealthConfig, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(logger, conf, gatherer)
	if err != nil {
		return nil, err
	}

	var addr string
	if os.Getenv("SCALINGENGINE_TEST_RUN") == "true" {
		addr = fmt.Sprintf("localhost:%d", conf.Port)
	} else {
		addr = fmt.Sprintf("0.0.0.0:%d", conf.Port)
	}

	logger.Info("new-health-server", lager.Data{"addr": addr})
	return http_server.New(addr, healthRouter), nil
}

func NewHealthRouter(logger lager.Logger, conf models.HealthConfig, gatherer prometheus.Gatherer) (*mux.Router, error) {
	healthRouter := mux.NewRouter()
	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})

	if conf.HealthCheckUsername == "" && conf.HealthCheckPassword == "" &&
		conf.HealthCheckUsernameHash == "" && conf.HealthCheckPasswordHash == "" {
		healthRouter.PathPrefix("").Handler(promHandler)
		return healthRouter, nil
	}

	basicAuthentication, err := createBasicAuthMiddleware(logger, conf)
	if err != nil {
		return nil, err
	}
	healthRouter.Use(basicAuthentication.middleware)
	healthRouter.PathPrefix("").Handler(promHandler)
	return healthRouter, nil
}

func createBasicAuthMiddleware(logger lager.Logger, conf models.HealthConfig) (*basicAuthenticationMiddleware, error) {
	usernameHash, err := getUserHashBytes(conf.HealthCheckUsername, conf.HealthCheckUsernameHash)
	if err != nil {
		logger.Error("failed-new-health-server-username", err)
		return nil, err
	}

	passwordHash, err := getUserHashBytes(conf.HealthCheckPassword, conf.HealthCheckPasswordHash)
	if err != nil {
		logger.Error("failed-new-health-server-password", err)
		return nil, err
	}

	return &basicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}, nil
}

func getUserHashBytes(plain string, hashed string) ([]byte, error) {
	if hashed != "" {
		return []byte(hashed), nil
	}
	return bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
}
