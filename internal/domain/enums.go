package domain

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeContact         EntityType = "CONTACT"
	EntityTypeGroup           EntityType = "GROUP"
	EntityTypeInteraction     EntityType = "INTERACTION"
	EntityTypeInteractionType EntityType = "INTERACTION_TYPE"
	EntityTypeUser            EntityType = "USER"
	EntityTypeTimezone        EntityType = "TIMEZONE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeContact, EntityTypeGroup, EntityTypeInteraction,
		EntityTypeInteractionType, EntityTypeUser, EntityTypeTimezone:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// ContactOrderBy selects the sort order of contact listings.
type ContactOrderBy string

const (
	ContactOrderByFullName        ContactOrderBy = "FULL_NAME"
	ContactOrderByLastInteraction ContactOrderBy = "LAST_INTERACTION"
	ContactOrderByFirstMet        ContactOrderBy = "FIRST_MET"
	ContactOrderByCreatedAt       ContactOrderBy = "CREATED_AT"
)

func (o ContactOrderBy) String() string { return string(o) }

func (o ContactOrderBy) IsValid() bool {
	switch o {
	case ContactOrderByFullName, ContactOrderByLastInteraction,
		ContactOrderByFirstMet, ContactOrderByCreatedAt:
		return true
	}
	return false
}

// OrDefault returns FULL_NAME for the zero value.
func (o ContactOrderBy) OrDefault() ContactOrderBy {
	if o == "" {
		return ContactOrderByFullName
	}
	return o
}

// AIPrompt selects the rewrite applied by the assistant.
type AIPrompt string

const (
	AIPromptSummary  AIPrompt = "SUMMARY"
	AIPromptSpelling AIPrompt = "SPELLING"
)

func (p AIPrompt) String() string { return string(p) }

func (p AIPrompt) IsValid() bool {
	switch p {
	case AIPromptSummary, AIPromptSpelling:
		return true
	}
	return false
}

// Instruction returns the text prepended to the user's input.
func (p AIPrompt) Instruction() string {
	switch p {
	case AIPromptSummary:
		return "Summarize the following text in a concise and informative way, but keep the same perspective as the original text and do not add any introduction from your part: "
	case AIPromptSpelling:
		return "Correct the following spelling mistakes: "
	}
	return ""
}
