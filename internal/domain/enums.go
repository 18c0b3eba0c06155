package domain

type ProjectStatus string

const (
	ProjectPlanned ProjectStatus = "planned"
	ProjectActive  ProjectStatus = "active"
	ProjectOnHold  ProjectStatus = "on_hold"
	ProjectDone    ProjectStatus = "done"
)

// ValidProjectStatuses is the canonical set of accepted status strings.
var ValidProjectStatuses = map[string]bool{
	"planned": true, "active": true, "on_hold": true, "done": true,
}

type DocKind string

const (
	KindChangeOrder DocKind = "change_order"
	KindSubmittal   DocKind = "submittal"
	KindRFI         DocKind = "rfi"
	KindOther       DocKind = "other"
)

// ValidDocKinds is the canonical set of accepted document kind strings.
var ValidDocKinds = map[string]bool{
	"change_order": true, "submittal": true, "rfi": true, "other": true,
}

// Label returns the human-readable kind name shown in listings.
func (k DocKind) Label() string {
	switch k {
	case KindChangeOrder:
		return "Change Order"
	case KindSubmittal:
		return "Submittal"
	case KindRFI:
		return "RFI"
	default:
		return "Other"
	}
}

type MemberRole string

const (
	RoleAdmin  MemberRole = "admin"
	RoleMember MemberRole = "member"
	RoleViewer MemberRole = "viewer"
)

// ValidMemberRoles is the canonical set of accepted member role strings.
var ValidMemberRoles = map[string]bool{
	"admin": true, "member": true, "viewer": true,
}
