package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/simmer/internal/osutil"
	"github.com/ayoisaiah/simmer/internal/timeutil"
)

// statusRefresh is how often a running countdown rewrites the status file
// between transitions.
const statusRefresh = 30 * time.Second

// Status mirrors the active cooking session for other processes.
type Status struct {
	// StepEndTime is when the current step expires. It is zero while paused.
	StepEndTime      time.Time `json:"step_end_time"`
	UpdatedAt        time.Time `json:"updated_at"`
	RecipeID         string    `json:"recipe_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Step             int       `json:"step"`
	StepCount        int       `json:"step_count"`
	StepRemaining    int       `json:"step_remaining_sec"`
	OverallRemaining int       `json:"overall_remaining_sec"`
	Running          bool      `json:"is_running"`
	Complete         bool      `json:"is_complete"`
}

func (t *Timer) status(now time.Time) (Status, bool) {
	sess, ok := t.ctrl.Active()
	if !ok {
		return Status{}, false
	}

	s := Status{
		UpdatedAt:        now,
		RecipeID:         sess.RecipeID,
		Step:             sess.StepIndex + 1,
		StepCount:        sess.StepCount,
		StepRemaining:    sess.StepRemaining,
		OverallRemaining: sess.OverallRemaining,
		Running:          sess.Running,
		Complete:         sess.Complete,
	}

	if r, ok := t.ctrl.Recipe(sess.RecipeID); ok {
		s.Title = r.Title

		if sess.StepIndex < len(r.Steps) {
			s.Description = r.Steps[sess.StepIndex].Description
		}
	}

	if sess.Running {
		s.StepEndTime = now.Add(time.Duration(sess.StepRemaining) * time.Second)
	}

	return s, true
}

// writeStatus records the active session in the status file, or removes the
// file when nothing is cooking.
func (t *Timer) writeStatus() (err error) {
	if t.opts.StatusPath == "" {
		return nil
	}

	s, ok := t.status(time.Now())
	if !ok {
		err = os.Remove(t.opts.StatusPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	statusFile, err := os.OpenFile(
		t.opts.StatusPath,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil && err == nil {
			err = errWriteStatus.Wrap(ferr)
		}
	}()

	writer := bufio.NewWriter(statusFile)

	if _, err = writer.Write(b); err != nil {
		return errWriteStatus.Wrap(err)
	}

	if err = writer.Flush(); err != nil {
		return errWriteStatus.Wrap(err)
	}

	t.statusAt = time.Now()

	return nil
}

// FormatStatus renders a one line summary of the status at time now.
func FormatStatus(s Status, now time.Time) string {
	label := fmt.Sprintf("[%s]", s.Title)

	if s.Complete {
		return label + " ready to serve"
	}

	remaining := s.StepRemaining
	suffix := " (paused)"

	if s.Running && !s.StepEndTime.IsZero() {
		remaining = max(timeutil.Round(s.StepEndTime.Sub(now).Seconds()), 0)
		suffix = ""
	}

	return fmt.Sprintf(
		"%s Step %d/%d: %s%s",
		label,
		s.Step,
		s.StepCount,
		timeutil.Clock(remaining),
		suffix,
	)
}

// ReportStatus prints the status of the recipe being cooked by another
// simmer process. Nothing is printed if simmer is not running.
func ReportStatus(w io.Writer, dbPath, statusPath string) error {
	db, err := bolt.Open(dbPath, osutil.FilePermission, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means simmer is not running, so no status to report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusPath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s Status

	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return errReadStatus.Wrap(err)
	}

	_, err = fmt.Fprintln(w, FormatStatus(s, time.Now()))

	return err
}
