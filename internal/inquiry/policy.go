package inquiry

import (
	"fmt"
	"math"
	"time"
)

const (
	// EditWindow is how long after creation an owner may update or delete.
	EditWindow = 24 * time.Hour
	// AutoDeleteAfter is measured from resolvedAt.
	AutoDeleteAfter = 48 * time.Hour
)

type Action int

const (
	ActionUpdate Action = iota
	ActionDelete
)

type WindowError struct {
	Action Action
	Hours  int
}

func (e *WindowError) Error() string {
	what := "Updates are"
	if e.Action == ActionDelete {
		what = "Deletion is"
	}
	return fmt.Sprintf("This inquiry is %d hours old. %s only allowed within 24 hours.", e.Hours, what)
}

// CheckModifiable permits the action while now-createdAt is under EditWindow.
func CheckModifiable(createdAt, now time.Time, action Action) error {
	elapsed := now.Sub(createdAt)
	if elapsed < EditWindow {
		return nil
	}
	return &WindowError{Action: action, Hours: int(math.Round(elapsed.Hours()))}
}

// Countdown renders the time left before a resolved inquiry is auto-deleted.
func Countdown(status Status, resolvedAt *time.Time, now time.Time) string {
	if status != StatusResolved {
		return ""
	}
	if resolvedAt == nil || resolvedAt.IsZero() {
		return "No resolution time set"
	}

	remaining := resolvedAt.Add(AutoDeleteAfter).Sub(now)
	if remaining <= 0 {
		return "Deleting Soon..."
	}

	hours := int(remaining / time.Hour)
	minutes := int((remaining % time.Hour) / time.Minute)
	seconds := int((remaining % time.Minute) / time.Second)

	if hours > 0 {
		return fmt.Sprintf("Auto-delete in: %dh %dm %ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("Auto-delete in: %dm %ds", minutes, seconds)
}
