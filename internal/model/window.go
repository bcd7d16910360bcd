package model

// Window represents a visible top-level window.
type Window struct {
	Handle uintptr `yaml:"handle"        json:"handle"`
	Title  string  `yaml:"title"         json:"title"`
	PID    uint32  `yaml:"pid"           json:"pid"`
	Exe    string  `yaml:"exe,omitempty" json:"exe,omitempty"`
}

// Process represents a running process as seen in a system snapshot.
type Process struct {
	PID uint32 `yaml:"pid" json:"pid"`
	Exe string `yaml:"exe" json:"exe"`
}
