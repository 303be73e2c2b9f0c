package models

type ScalingStatus int

// Scaling action lifecycle. Plain ints rather than iota because the values
// are persisted and must survive round trips through the store.
const (
	ScalingStatusReady     ScalingStatus = 1
	ScalingStatusRealizing ScalingStatus = 2
	ScalingStatusCompleted ScalingStatus = 3
	ScalingStatusFailed    ScalingStatus = -1
)

func (s ScalingStatus) String() string {
	switch s {
	case ScalingStatusReady:
		return "READY"
	case ScalingStatusRealizing:
		return "REALIZING"
	case ScalingStatusCompleted:
		return "COMPLETED"
	case ScalingStatusFailed:
		return "FAILED"
	}
	return "UNKNOWN"
}

type TriggerType int

const (
	TriggerTypeMonitorEvent  TriggerType = 0
	TriggerTypePolicyChanged TriggerType = 1
)

// TriggerEvent is a threshold breach reported by the metric monitoring
// subsystem. It is ephemeral; the engine never persists it.
type TriggerEvent struct {
	AppId       string  `json:"app_id"`
	TriggerId   string  `json:"trigger_id"`
	MetricType  string  `json:"metric_type"`
	MetricValue float64 `json:"metric_value"`
	Timestamp   int64   `json:"timestamp"`
}

// ScalingHistory is the audit record of one scaling attempt. A record is
// open while EndTime is zero and immutable once closed.
type ScalingHistory struct {
	Id                 string        `json:"id"`
	Revision           int64         `json:"revision"`
	AppId              string        `json:"app_id"`
	Status             ScalingStatus `json:"status"`
	Adjustment         int           `json:"adjustment"`
	Instances          int           `json:"instances"`
	StartTime          int64         `json:"start_time"`
	EndTime            int64         `json:"end_time"`
	MetricName         string        `json:"metric_name,omitempty"`
	Threshold          int64         `json:"threshold"`
	ThresholdType      string        `json:"threshold_type,omitempty"`
	BreachDurationSecs int           `json:"breach_duration_secs"`
	TriggerType        TriggerType   `json:"trigger_type"`
	ErrorCode          string        `json:"error_code,omitempty"`
	ScheduleType       string        `json:"schedule_type,omitempty"`
	TimeZone           string        `json:"time_zone,omitempty"`
	ScheduleStartTime  int64         `json:"schedule_start_time,omitempty"`
	DayOfWeek          int           `json:"day_of_week,omitempty"`
	RawOffset          int           `json:"raw_offset"`
}

// AppScalingState is the per-application scaling state machine record.
// ScaleEvent holds the open history while the state is REALIZING and is nil
// otherwise. Revision carries the store's optimistic-concurrency token.
type AppScalingState struct {
	AppId                    string          `json:"app_id"`
	Revision                 int64           `json:"revision"`
	InstanceCountState       ScalingStatus   `json:"instance_count_state"`
	LastActionTriggerId      string          `json:"last_action_trigger_id,omitempty"`
	LastActionInstanceTarget int             `json:"last_action_instance_target"`
	LastActionStartTime      int64           `json:"last_action_start_time"`
	LastActionEndTime        int64           `json:"last_action_end_time"`
	ErrorCode                string          `json:"error_code,omitempty"`
	HistoryId                string          `json:"history_id,omitempty"`
	ScaleEvent               *ScalingHistory `json:"scale_event,omitempty"`
}

const (
	ScaleTypeIn  = "scale_in"
	ScaleTypeOut = "scale_out"
)

// HistoryFilter selects closed history records. Status and times of zero
// mean unset; MaxCount caps the page size.
type HistoryFilter struct {
	AppId      string
	Status     ScalingStatus
	StatusSet  bool
	StartTime  int64
	EndTime    int64
	MetricName string
	ScaleType  string
	Offset     int
	MaxCount   int
}

// MatchesScaleType reports whether a history entry's direction satisfies
// the filter; entries with zero adjustment match neither direction.
func (f *HistoryFilter) MatchesScaleType(adjustment int) bool {
	switch f.ScaleType {
	case ScaleTypeIn:
		return adjustment < 0
	case ScaleTypeOut:
		return adjustment > 0
	}
	return true
}

// MonitorTask tracks one issued scaling action until the application's
// running instance count converges on the desired count.
type MonitorTask struct {
	AppId               string
	TargetInstanceCount int
	ActionId            string
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
