package google

import (
	"log/slog"

	"github.com/go-playground/validator/v10"

	"calbridge/internal/meeting"
)

// LinkDetector recognises join links of conferencing services.
type LinkDetector interface {
	Detect(rawURL string) (meeting.Service, bool)
}

// Adapter maps between Google Calendar and Google Tasks payloads and the domain model.
// It holds no state between calls.
type Adapter struct {
	detector LinkDetector
	logger   *slog.Logger
	validate *validator.Validate
}

// NewAdapter creates an Adapter. A nil detector falls back to the built-in meeting detector.
func NewAdapter(logger *slog.Logger, detector LinkDetector) *Adapter {
	if detector == nil {
		detector = meeting.NewDetector()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		detector: detector,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
