package appraisal

type Palette int

const (
	PaletteNeutral Palette = iota
	PaletteSuccess
	PaletteWarning
	PalettePrimary
	PaletteAccent
)

func (p Palette) String() string {
	switch p {
	case PaletteSuccess:
		return "success"
	case PaletteWarning:
		return "warning"
	case PalettePrimary:
		return "primary"
	case PaletteAccent:
		return "accent"
	default:
		return "neutral"
	}
}

// ProcessingProgress is the fixed completion shown for records still processing.
const ProcessingProgress = 0.67

// StatusStyle is how a record's status badge is drawn.
type StatusStyle struct {
	Palette      Palette
	Icon         string
	ShowProgress bool
	Progress     float64
}

var defaultStyle = StatusStyle{Palette: PaletteNeutral}

// StyleFor maps every status to a badge style. Statuses outside the known set
// get the neutral default, same as pending.
func StyleFor(s Status) StatusStyle {
	switch s {
	case StatusCompleted:
		return StatusStyle{Palette: PaletteSuccess}
	case StatusProcessing:
		return StatusStyle{
			Palette:      PaletteWarning,
			Icon:         "◷",
			ShowProgress: true,
			Progress:     ProcessingProgress,
		}
	case StatusPending:
		return defaultStyle
	default:
		return defaultStyle
	}
}
