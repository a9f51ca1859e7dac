package model

// Action is what a natural-language request asks the service to do.
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
)
