package translate

// Task is one declarative unit of work: merge one language's phrase table
// with one canonical page to produce the translated page. Paths are relative
// to the help tree root; the command's stdout is redirected to Output by
// whatever executes the task.
type Task struct {
	Language   string   `yaml:"language"`
	Page       string   `yaml:"page"`
	Inputs     []string `yaml:"inputs"`
	Output     string   `yaml:"output"`
	Command    []string `yaml:"command"`
	InstallDir string   `yaml:"install_dir"`
}

// InstallEntry maps an artifact (by tree-relative path) to the directory it
// is installed into. Entries are pure declarations; nothing is copied here.
type InstallEntry struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// TaskSet is the complete output of one Apply pass: the resolved
// configuration echo, the translation tasks, and the bulk install entries
// for canonical pages and legal files.
type TaskSet struct {
	DocID     string         `yaml:"doc_id,omitempty"`
	Tool      string         `yaml:"tool"`
	Languages []string       `yaml:"languages"`
	Pages     []string       `yaml:"pages"`
	Tasks     []Task         `yaml:"tasks"`
	Installs  []InstallEntry `yaml:"installs"`

	// Diagnostics carries the enumeration's non-fatal warnings for display.
	// They are not part of the generated manifest.
	Diagnostics []string `yaml:"-"`
}
