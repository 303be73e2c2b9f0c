package cloud

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
)

const (
	PathApps              = "/v1/apps"
	DefaultRequestTimeout = 5 * time.Second
)

type ClientConfig struct {
	APIUrl         string          `yaml:"api_url"`
	AuthToken      string          `yaml:"auth_token"`
	TLS            models.TLSCerts `yaml:"tls"`
	RequestTimeout time.Duration   `yaml:"request_timeout"`
}

type appEntity struct {
	Instances        int `json:"instances"`
	RunningInstances int `json:"running_instances"`
}

// APIClient talks to the cloud provider's application API. It implements
// InstanceClient, translating provider failures into classified Errors.
type APIClient struct {
	logger     lager.Logger
	conf       ClientConfig
	httpClient *http.Client
}

var _ InstanceClient = &APIClient{}

func NewAPIClient(logger lager.Logger, conf ClientConfig) (*APIClient, error) {
	if conf.RequestTimeout == 0 {
		conf.RequestTimeout = DefaultRequestTimeout
	}

	httpClient := &http.Client{Timeout: conf.RequestTimeout}
	tlsConfig, err := conf.TLS.CreateClientConfig()
	if err != nil {
		return nil, fmt.Errorf("cloud api client tls config error: %w", err)
	}
	if tlsConfig != nil {
		httpClient.Transport = &http.Transport{TLSClientConfig: tlsConfig}
	}

	return &APIClient{
		logger:     logger.Session("cloud-api-client"),
		conf:       conf,
		httpClient: httpClient,
	}, nil
}

func (c *APIClient) GetInstanceCount(appId string) (int, error) {
	app, err := c.getApp(appId)
	if err != nil {
		return -1, err
	}
	return app.Instances, nil
}

func (c *APIClient) GetRunningInstanceCount(appId string) (int, error) {
	app, err := c.getApp(appId)
	if err != nil {
		return -1, err
	}
	return app.RunningInstances, nil
}

func (c *APIClient) getApp(appId string) (*appEntity, error) {
	url := c.conf.APIUrl + path.Join(PathApps, appId)
	c.logger.Debug("get-app", lager.Data{"url": url})

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("get-app-new-request", err)
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("get-app-do-request", err, lager.Data{"appId": appId})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = c.classifyResponse(appId, resp)
		c.logger.Error("get-app-response", err, lager.Data{"appId": appId, "statusCode": resp.StatusCode})
		return nil, err
	}

	app := &appEntity{}
	err = json.NewDecoder(resp.Body).Decode(app)
	if err != nil {
		c.logger.Error("get-app-unmarshal", err, lager.Data{"appId": appId})
		return nil, err
	}
	return app, nil
}

func (c *APIClient) SetInstanceCount(appId string, count int) error {
	url := c.conf.APIUrl + path.Join(PathApps, appId)
	c.logger.Debug("set-instance-count", lager.Data{"url": url, "count": count})

	body, err := json.Marshal(appEntity{Instances: count})
	if err != nil {
		c.logger.Error("set-instance-count-marshal", err, lager.Data{"appId": appId})
		return err
	}

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("set-instance-count-new-request", err)
		return err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("set-instance-count-do-request", err, lager.Data{"appId": appId})
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		err = c.classifyResponse(appId, resp)
		c.logger.Error("set-instance-count-response", err, lager.Data{"appId": appId, "statusCode": resp.StatusCode, "count": count})
		return err
	}
	return nil
}

func (c *APIClient) setHeaders(req *http.Request) {
	if c.conf.AuthToken != "" {
		req.Header.Set("Authorization", "bearer "+c.conf.AuthToken)
	}
}

func (c *APIClient) classifyResponse(appId string, resp *http.Response) error {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		respBody = nil
	}

	errResp := models.ErrorResponse{}
	if len(respBody) != 0 {
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			errResp.Message = string(respBody)
		}
	}

	code := ErrorCodeInternal
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = ErrorCodeNotFound
	case strings.Contains(strings.ToLower(errResp.Code), "quota"):
		code = ErrorCodeQuotaExceeded
	}
	return NewError(code, appId, resp.StatusCode, errResp.Message)
}
