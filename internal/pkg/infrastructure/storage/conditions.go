package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	AlertID         string
	AlertType       string
	DataCollectorID string
	DeviceID        string
	QuarantineID    string
	Organizations   []string
	Visible         *bool
	Resolved        *bool

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.AlertID != "" {
		args["alert_id"] = c.AlertID
	}
	if c.AlertType != "" {
		args["alert_type_code"] = c.AlertType
	}
	if c.DataCollectorID != "" {
		args["data_collector_id"] = c.DataCollectorID
	}
	if c.DeviceID != "" {
		args["device_id"] = c.DeviceID
	}
	if c.QuarantineID != "" {
		args["quarantine_id"] = c.QuarantineID
	}
	if len(c.Organizations) > 0 {
		args["organizations"] = c.Organizations
	}
	if c.Visible != nil {
		args["visible"] = *c.Visible
	}
	if c.Resolved != nil {
		args["resolved"] = *c.Resolved
	}
	if c.offset != nil {
		args["offset"] = *c.offset
	}
	if c.limit != nil {
		args["limit"] = *c.limit
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.AlertID != "" {
		where = append(where, "a.alert_id = @alert_id")
	}
	if c.AlertType != "" {
		where = append(where, "a.alert_type_code = @alert_type_code")
	}
	if c.DataCollectorID != "" {
		where = append(where, "a.data_collector_id = @data_collector_id")
	}
	if c.DeviceID != "" {
		where = append(where, "a.device_id = @device_id")
	}
	if len(c.Organizations) > 0 {
		where = append(where, "dc.organization_id = ANY(@organizations)")
	}
	if c.Visible != nil {
		where = append(where, "a.visible = @visible")
	}
	if c.Resolved != nil {
		where = append(where, "q.resolved = @resolved")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

// QuarantineWhere builds the predicates for queries over the quarantines
// table (aliased q), where the filterable columns differ from the alerts view.
func (c Condition) QuarantineWhere() string {
	where := []string{}

	if c.QuarantineID != "" {
		where = append(where, "q.quarantine_id = @quarantine_id")
	}
	if c.AlertID != "" {
		where = append(where, "q.alert_id = @alert_id")
	}
	if c.AlertType != "" {
		where = append(where, "q.alert_type_code = @alert_type_code")
	}
	if c.DataCollectorID != "" {
		where = append(where, "q.data_collector_id = @data_collector_id")
	}
	if c.DeviceID != "" {
		where = append(where, "q.device_id = @device_id")
	}
	if len(c.Organizations) > 0 {
		where = append(where, "dc.organization_id = ANY(@organizations)")
	}
	if c.Resolved != nil {
		where = append(where, "q.resolved = @resolved")
	}

	if len(where) == 0 {
		return "TRUE"
	}

	return strings.Join(where, " AND ")
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "created_at"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 0
	}
	return *c.limit
}

func (c Condition) OffsetLimit() string {
	offsetLimit := ""

	if c.offset != nil {
		offsetLimit += fmt.Sprintf("OFFSET %d ", c.Offset())
	}
	if c.limit != nil {
		offsetLimit += fmt.Sprintf("LIMIT %d ", c.Limit())
	}

	return offsetLimit
}

func WithAlertID(alertID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertID = alertID
		return c
	}
}

func WithAlertType(alertType string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.AlertType = alertType
		return c
	}
}

func WithDataCollectorID(dataCollectorID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DataCollectorID = dataCollectorID
		return c
	}
}

func WithDeviceID(deviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.DeviceID = deviceID
		return c
	}
}

func WithQuarantineID(quarantineID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.QuarantineID = quarantineID
		return c
	}
}

func WithOrganizations(organizations []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Organizations = organizations
		return c
	}
}

func WithVisible(visible bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Visible = &visible
		return c
	}
}

func WithResolved(resolved bool) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Resolved = &resolved
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortDesc(desc bool) ConditionFunc {
	return func(c *Condition) *Condition {
		if desc {
			c.sortOrder = "DESC"
		} else {
			c.sortOrder = "ASC"
		}
		return c
	}
}

func ParseConditions(ctx context.Context, params map[string][]string) []ConditionFunc {
	log := logging.GetFromContext(ctx)

	conditions := make([]ConditionFunc, 0)

	for k, v := range params {
		switch strings.ToLower(k) {
		case "type":
			conditions = append(conditions, WithAlertType(v[0]))
		case "collector":
			conditions = append(conditions, WithDataCollectorID(v[0]))
		case "device_id":
			conditions = append(conditions, WithDeviceID(v[0]))
		case "visible":
			visible, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithVisible(visible))
		case "resolved":
			resolved, _ := strconv.ParseBool(v[0])
			conditions = append(conditions, WithResolved(resolved))
		case "limit":
			limit, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithLimit(limit))
		case "offset":
			offset, _ := strconv.Atoi(v[0])
			conditions = append(conditions, WithOffset(offset))
		case "sortorder":
			conditions = append(conditions, WithSortDesc(strings.EqualFold(v[0], "desc")))
		default:
			log.Debug("unknown query parameter", "param", k, "value", v[0])
		}
	}

	return conditions
}
