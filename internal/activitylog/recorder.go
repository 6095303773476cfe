package activitylog

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Recorder appends entries for a fixed data directory. A nil Recorder is a
// no-op, so services can be constructed without a log in tests.
type Recorder struct {
	dataDir string
	log     logrus.FieldLogger
}

// NewRecorder creates a Recorder writing under dataDir.
func NewRecorder(dataDir string, log logrus.FieldLogger) *Recorder {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Recorder{dataDir: dataDir, log: log}
}

// Record appends one entry. An append failure is logged and swallowed; the
// mutation that triggered it has already succeeded.
func (r *Recorder) Record(entity, action, recordID, details string) {
	if r == nil {
		return
	}
	e := Entry{
		Timestamp: time.Now(),
		Entity:    entity,
		Action:    action,
		RecordID:  recordID,
		Details:   details,
	}
	if err := Append(r.dataDir, []Entry{e}); err != nil {
		r.log.WithError(err).Warn("could not append to activity log")
	}
}
