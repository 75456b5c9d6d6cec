// Package analysis holds the client-side view-state: the editable handle
// list, the fetched result rows, sort projection, and table export. It is a
// rendering-free model driven by reducer-style transitions and is not safe
// for concurrent use.
package analysis

import (
	"strconv"

	"github.com/lueurxax/instagram-analyzer/internal/core/account"
)

// Status tags the outcome of one handle's resolution.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Row is a tagged variant: success rows carry metrics, error rows carry the
// original handle plus a message with zeroed metrics.
type Row struct {
	Status  Status
	Metrics account.Metrics
	Handle  string
	Message string
}

func SuccessRow(metrics account.Metrics) Row {
	return Row{
		Status:  StatusSuccess,
		Metrics: metrics,
		Handle:  metrics.Handle,
	}
}

func ErrorRow(handle, message string) Row {
	return Row{
		Status:  StatusError,
		Handle:  handle,
		Message: message,
	}
}

// SortField names a sortable table column.
type SortField string

const (
	FieldHandle         SortField = "handle"
	FieldName           SortField = "name"
	FieldFollowers      SortField = "followers"
	FieldAverageViews   SortField = "averageViews"
	FieldCategory       SortField = "category"
	FieldEngagementRate SortField = "engagementRate"
	FieldLocation       SortField = "location"
)

func (f SortField) numeric() bool {
	switch f {
	case FieldFollowers, FieldAverageViews, FieldEngagementRate:
		return true
	default:
		return false
	}
}

func (r Row) numericValue(field SortField) float64 {
	switch field {
	case FieldFollowers:
		return float64(r.Metrics.Followers)
	case FieldAverageViews:
		return float64(r.Metrics.AverageViews)
	case FieldEngagementRate:
		return r.Metrics.EngagementRate
	default:
		return 0
	}
}

func (r Row) stringValue(field SortField) string {
	switch field {
	case FieldHandle:
		return r.Handle
	case FieldName:
		return r.Metrics.Name
	case FieldCategory:
		return r.Metrics.Category
	case FieldLocation:
		return r.Metrics.Location
	case FieldFollowers:
		return strconv.Itoa(r.Metrics.Followers)
	case FieldAverageViews:
		return strconv.Itoa(r.Metrics.AverageViews)
	case FieldEngagementRate:
		return strconv.FormatFloat(r.Metrics.EngagementRate, 'f', 2, 64)
	default:
		return ""
	}
}
