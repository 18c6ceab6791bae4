package authstate

// Frame identifies the execution frame hosting the application, as reported
// by the host environment. A top-level application is its own parent; an
// application embedded in a foreign container (an iframe, a preview pane, a
// plugin host) reports a different parent.
type Frame struct {
	ID       string
	ParentID string
}

// Embedded reports whether the application runs inside a foreign container.
// Storage may be restricted or sandboxed there, so the manager substitutes a
// fixed demo identity and never touches the durable store.
func (f Frame) Embedded() bool {
	return f.ParentID != "" && f.ParentID != f.ID
}

// TopLevel is the default frame: the application hosts itself.
var TopLevel = Frame{}
