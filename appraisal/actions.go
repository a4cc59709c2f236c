package appraisal

type Action int

const (
	ActionView Action = iota
	ActionDownload
)

func (a Action) String() string {
	switch a {
	case ActionView:
		return "view"
	case ActionDownload:
		return "download"
	}
	return "unknown"
}

// ActionsFor lists the row actions offered for r. View is always there,
// download only once the appraisal is completed.
func ActionsFor(r Record) []Action {
	actions := []Action{ActionView}
	if CanDownload(r) {
		actions = append(actions, ActionDownload)
	}
	return actions
}

func CanDownload(r Record) bool {
	return r.Status == StatusCompleted
}
