package ai

import (
	"encoding/json"
	"strings"

	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// ExtractTasks returns the first JSON array in raw that decodes as a non-empty
// task list. Decoding is attempted at every '[' so stray brackets and quotes
// in the surrounding prose do not hide the schedule. An empty array is only
// returned when no non-empty task list exists.
//
// It fails with ErrNoTaskArray when no '[' starts a well-formed JSON array and
// with ErrMalformedTaskArray when arrays exist but none decodes as tasks.
func ExtractTasks(raw string) ([]entity.GeneratedTask, error) {
	var (
		empty   []entity.GeneratedTask
		found   bool
		lastErr error
	)
	for i := 0; i < len(raw); i++ {
		if raw[i] != '[' {
			continue
		}
		candidate, ok := leadingArray(raw[i:])
		if !ok {
			continue
		}
		found = true

		var tasks []entity.GeneratedTask
		if err := json.Unmarshal(candidate, &tasks); err != nil {
			lastErr = err
			continue
		}
		if len(tasks) > 0 {
			return tasks, nil
		}
		if empty == nil {
			empty = tasks
		}
	}

	switch {
	case empty != nil:
		return empty, nil
	case found:
		return nil, domainerrors.ErrMalformedTaskArray.WithCause(lastErr)
	default:
		return nil, domainerrors.ErrNoTaskArray
	}
}

// leadingArray decodes the JSON value at the start of s and ignores whatever
// follows it. s always starts with '[' so a decoded value is an array.
func leadingArray(s string) (json.RawMessage, bool) {
	var v json.RawMessage
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}
