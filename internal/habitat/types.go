package habitat

import "time"

const habitatTimestampLayout = "2006-01-02 15:04:05"

// statusPending is the task state filter sent to /todo/list. The service
// models further states (done, dropped) but this client only lists open
// tasks.
const statusPending = 0

// Reading is one temperature sample from the sensor service.
type Reading struct {
	Celsius  float64
	Humidity float64
}

// Todo is one open task row, in the server's order.
type Todo struct {
	ID         int64
	Task       string
	Deadline   string
	Completed  bool
	CreateTime string
	UpdateTime string
	IPAddr     string
}

// ParsedCreateTime returns CreateTime as time.Time when possible.
func (t Todo) ParsedCreateTime() time.Time {
	return parseTime(t.CreateTime)
}

// ParsedUpdateTime returns UpdateTime as time.Time when possible.
func (t Todo) ParsedUpdateTime() time.Time {
	return parseTime(t.UpdateTime)
}

// page selects one page of rows from a list endpoint.
type page struct {
	Num  int `json:"num"`
	Size int `json:"size"`
}

// sensorListRequest mirrors the POST habitat/raw/list body.
type sensorListRequest struct {
	DeviceCode string `json:"device_code"`
	Page       page   `json:"page"`
}

// todoListRequest mirrors the POST todo/list body.
type todoListRequest struct {
	Status []int `json:"status"`
	Page   page  `json:"page"`
}

// sensorListResponse mirrors the habitat/raw/list envelope.
type sensorListResponse struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data sensorListData `json:"data"`
}

type sensorListData struct {
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Rows     []sensorRow `json:"rows"`
	Total    int         `json:"total"`
}

type sensorRow struct {
	DeviceCode string       `json:"device_code"`
	Values     sensorValues `json:"values"`
	CreateTime string       `json:"create_time"`
}

type sensorValues struct {
	Temp float64 `json:"temp"`
	Hum  float64 `json:"hum"`
}

// todoListResponse mirrors the todo/list envelope.
type todoListResponse struct {
	Code int          `json:"code"`
	Msg  string       `json:"msg"`
	Data todoListData `json:"data"`
}

type todoListData struct {
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Rows     []todoRow `json:"rows"`
	Total    int       `json:"total"`
}

type todoRow struct {
	ID         int64  `json:"id"`
	Task       string `json:"task"`
	Deadline   string `json:"deadline"`
	Completed  int    `json:"completed"`
	CreateTime string `json:"create_time"`
	UpdateTime string `json:"update_time"`
	IPAddr     string `json:"ipaddr"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(habitatTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
