package models

const (
	// Trigger ids carried by incoming trigger events. A LOWER breach is a
	// candidate scale-in, an UPPER breach a candidate scale-out.
	TriggerIdLowerThreshold = "LOWER"
	TriggerIdUpperThreshold = "UPPER"

	StatTypeAvg = "avg"
	StatTypeMax = "max"

	// Adjustment modes of a PolicyTrigger step. An absolute step is an
	// instance delta, a percentage step is applied to the current count.
	AdjustmentChangeCount      = "changeCount"
	AdjustmentChangePercentage = "changePercentage"
)

type PolicyTrigger struct {
	MetricType             string `json:"metric_type"`
	StatType               string `json:"stat_type"`
	StatWindowSecs         int    `json:"stat_window_secs"`
	BreachDurationSecs     int    `json:"breach_duration_secs"`
	LowerThreshold         int64  `json:"lower_threshold"`
	UpperThreshold         int64  `json:"upper_threshold"`
	InstanceStepCountDown  int    `json:"instance_step_count_down"`
	InstanceStepCountUp    int    `json:"instance_step_count_up"`
	StepDownCoolDownSecs   int    `json:"step_down_cool_down_secs"`
	StepUpCoolDownSecs     int    `json:"step_up_cool_down_secs"`
	ScaleInAdjustmentType  string `json:"scale_in_adjustment_type,omitempty"`
	ScaleOutAdjustmentType string `json:"scale_out_adjustment_type,omitempty"`
}

// Step returns the instance step configured for the given trigger direction.
// The scale-in step is a non-positive value.
func (t *PolicyTrigger) Step(triggerId string) int {
	if triggerId == TriggerIdLowerThreshold {
		return t.InstanceStepCountDown
	}
	return t.InstanceStepCountUp
}

func (t *PolicyTrigger) AdjustmentType(triggerId string) string {
	if triggerId == TriggerIdLowerThreshold {
		return t.ScaleInAdjustmentType
	}
	return t.ScaleOutAdjustmentType
}

func (t *PolicyTrigger) CoolDownSecs(triggerId string) int {
	if triggerId == TriggerIdLowerThreshold {
		return t.StepDownCoolDownSecs
	}
	return t.StepUpCoolDownSecs
}

func (t *PolicyTrigger) Threshold(triggerId string) int64 {
	if triggerId == TriggerIdLowerThreshold {
		return t.LowerThreshold
	}
	return t.UpperThreshold
}

const (
	ScheduleTypeRecurring   = "RECURRING"
	ScheduleTypeSpecialDate = "SPECIALDATE"
)

// Policy is the scaling policy attached to an application. The Current*
// fields reflect whichever schedule window is active now; they are computed
// upstream by the policy layer and read-only here.
type Policy struct {
	PolicyId                 string           `json:"policy_id"`
	InstanceMinCount         int              `json:"instance_min_count"`
	InstanceMaxCount         int              `json:"instance_max_count"`
	Timezone                 string           `json:"timezone"`
	PolicyTriggers           []*PolicyTrigger `json:"policy_triggers"`
	CurrentScheduleType      string           `json:"current_schedule_type,omitempty"`
	CurrentInstanceMinCount  int              `json:"current_instance_min_count"`
	CurrentInstanceMaxCount  int              `json:"current_instance_max_count"`
	CurrentScheduleStartTime int64            `json:"current_schedule_start_time,omitempty"`
}

// EffectiveInstanceMinCount returns the lower instance bound in force right
// now: the active schedule window's bound when one is set, otherwise the
// policy default.
func (p *Policy) EffectiveInstanceMinCount() int {
	if p.CurrentInstanceMinCount > 0 {
		return p.CurrentInstanceMinCount
	}
	return p.InstanceMinCount
}

func (p *Policy) EffectiveInstanceMaxCount() int {
	if p.CurrentInstanceMaxCount > 0 {
		return p.CurrentInstanceMaxCount
	}
	return p.InstanceMaxCount
}

// TriggerForMetric returns the policy trigger matching the event's metric
// type, or nil when the policy has no rule for that metric.
func (p *Policy) TriggerForMetric(metricType string) *PolicyTrigger {
	for _, trigger := range p.PolicyTriggers {
		if trigger.MetricType == metricType {
			return trigger
		}
	}
	return nil
}

type Application struct {
	AppId    string `json:"app_id"`
	Name     string `json:"name"`
	PolicyId string `json:"policy_id"`
}
