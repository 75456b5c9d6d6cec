package analysis

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lueurxax/instagram-analyzer/internal/core/account"
)

const genericFailureMessage = "analysis request failed"

// Resolver fetches metrics for a single handle.
type Resolver interface {
	Analyze(ctx context.Context, handle string) (account.Metrics, error)
}

// SortState holds the current sort column and direction.
type SortState struct {
	Field      SortField
	Descending bool
}

// State is the full view state. Handles is never empty; Results is replaced
// wholesale by each analysis run.
type State struct {
	Handles []string
	Results []Row
	Sort    SortState
	Loading bool
}

// Controller owns the view state and drives it through explicit transitions.
// Single-threaded by design: the UI event loop is the only caller.
type Controller struct {
	resolver Resolver
	logger   *zerolog.Logger
	state    State
}

func NewController(resolver Resolver, logger *zerolog.Logger) *Controller {
	return &Controller{
		resolver: resolver,
		logger:   logger,
		state: State{
			Handles: []string{""},
			Sort:    SortState{Field: FieldFollowers, Descending: true},
		},
	}
}

func (c *Controller) Handles() []string {
	return c.state.Handles
}

func (c *Controller) Results() []Row {
	return c.state.Results
}

func (c *Controller) Sort() SortState {
	return c.state.Sort
}

func (c *Controller) Loading() bool {
	return c.state.Loading
}

// AddHandleSlot appends an empty entry to the editable handle list.
func (c *Controller) AddHandleSlot() {
	c.state.Handles = append(c.state.Handles, "")
}

// RemoveHandleSlot deletes the entry at index. The list is reinitialized with
// one empty entry when the last slot is removed; it is never empty.
func (c *Controller) RemoveHandleSlot(index int) {
	if index < 0 || index >= len(c.state.Handles) {
		return
	}

	c.state.Handles = append(c.state.Handles[:index], c.state.Handles[index+1:]...)

	if len(c.state.Handles) == 0 {
		c.state.Handles = []string{""}
	}
}

// SetHandle stores user input for a slot, stripping one leading @ and
// surrounding whitespace. No further normalization happens client-side.
func (c *Controller) SetHandle(index int, text string) {
	if index < 0 || index >= len(c.state.Handles) {
		return
	}

	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "@")
	text = strings.TrimSpace(text)

	c.state.Handles[index] = text
}

// RunAnalysis resolves every non-blank handle sequentially, one request in
// flight at a time, and replaces the result set. Per-handle failures never
// abort the batch; each handle's outcome is recorded individually.
func (c *Controller) RunAnalysis(ctx context.Context) {
	handles := c.nonBlankHandles()
	if len(handles) == 0 {
		return
	}

	logger := c.logger.With().Str("run_id", uuid.New().String()).Logger()

	c.state.Loading = true
	defer func() {
		c.state.Loading = false
	}()

	results := make([]Row, 0, len(handles))

	for _, handle := range handles {
		metrics, err := c.resolver.Analyze(ctx, handle)
		if err != nil {
			logger.Warn().Err(err).Str("handle", handle).Msg("handle analysis failed")
			results = append(results, ErrorRow(handle, failureMessage(err)))

			continue
		}

		results = append(results, SuccessRow(metrics))
	}

	logger.Info().Int("handles", len(handles)).Msg("analysis run finished")

	c.state.Results = results
}

// SortBy toggles direction when the field is already active and resets to
// ascending otherwise.
func (c *Controller) SortBy(field SortField) {
	if c.state.Sort.Field == field {
		c.state.Sort.Descending = !c.state.Sort.Descending
		return
	}

	c.state.Sort = SortState{Field: field}
}

// CanExport reports whether there is anything to export. The UI hides the
// export buttons entirely when it is false.
func (c *Controller) CanExport() bool {
	return len(c.state.Results) > 0
}

func (c *Controller) nonBlankHandles() []string {
	handles := make([]string, 0, len(c.state.Handles))

	for _, handle := range c.state.Handles {
		if strings.TrimSpace(handle) != "" {
			handles = append(handles, handle)
		}
	}

	return handles
}

// failureMessage prefers the server-provided error over the generic client
// message.
func failureMessage(err error) string {
	var apiErr APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return genericFailureMessage
}
