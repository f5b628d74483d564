package driver

import "fmt"

type NoticeKind int

const (
	InvalidElementCount NoticeKind = iota
	InvalidSpeedLevel
	InvalidAlgorithm
	AlreadySorted
	FeatureUnavailable
	NoSequence
	SortInProgress
)

func (k NoticeKind) String() string {
	switch k {
	case InvalidElementCount:
		return "InvalidElementCount"
	case InvalidSpeedLevel:
		return "InvalidSpeedLevel"
	case InvalidAlgorithm:
		return "InvalidAlgorithm"
	case AlreadySorted:
		return "AlreadySorted"
	case FeatureUnavailable:
		return "FeatureUnavailable"
	case NoSequence:
		return "NoSequence"
	case SortInProgress:
		return "SortInProgress"
	default:
		return fmt.Sprintf("NoticeKind(%d)", int(k))
	}
}

// Notice is a user-facing message. Warnings ask the user to change a
// setting; informational notices only explain a refusal.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
	Values  []int
}

func (n Notice) Warning() bool { return n.Title == "Warning" }

type Notifier interface {
	Notify(n Notice)
}

type NotifierFunc func(n Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

func warning(kind NoticeKind, format string, args ...any) Notice {
	return Notice{Kind: kind, Title: "Warning", Message: fmt.Sprintf(format, args...)}
}

func info(kind NoticeKind, title, format string, args ...any) Notice {
	return Notice{Kind: kind, Title: title, Message: fmt.Sprintf(format, args...)}
}
