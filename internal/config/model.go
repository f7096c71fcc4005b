package config

// Project represents the kyo.yaml project manifest. Every field is optional;
// zero values are filled in by Defaults so a repository without kyo.yaml
// behaves exactly like the stock bootstrap.
type Project struct {
	Version int `yaml:"version"`

	// App is the application entry point exported as FLASK_APP.
	App string `yaml:"app,omitempty"`
	// Mode is the runtime mode exported as FLASK_ENV.
	Mode string `yaml:"mode,omitempty"`

	PythonVersionFile string `yaml:"python_version_file,omitempty"`
	Requirements      string `yaml:"requirements,omitempty"`

	// SourceBranch is the branch diffed against to scope checks. Empty
	// means auto-detect (main, then master).
	SourceBranch string `yaml:"source_branch,omitempty"`

	Port int `yaml:"port,omitempty"`

	DB DB `yaml:"db,omitempty"`

	CleanGlobs []string `yaml:"clean_globs,omitempty"`
	TodoTags   []string `yaml:"todo_tags,omitempty"`
}

// DB configures the local development database.
type DB struct {
	Path string `yaml:"path,omitempty"`
}

// Defaults returns a Project carrying the stock bootstrap settings.
func Defaults() *Project {
	return &Project{
		Version:           1,
		App:               "app/wsgi.py",
		Mode:              "development",
		PythonVersionFile: ".python-version",
		Requirements:      "requirements.txt",
		Port:              5000,
		DB:                DB{Path: "db/app.db"},
		CleanGlobs:        []string{"*.pyc", "__pycache__", "*~", ".coverage", ".pytest_cache"},
		TodoTags:          []string{"TODO", "FIXME", "XXX", "HACK", "BUG"},
	}
}

// merge overlays non-zero fields of p onto the defaults.
func (p *Project) merge(d *Project) {
	if p.App == "" {
		p.App = d.App
	}
	if p.Mode == "" {
		p.Mode = d.Mode
	}
	if p.PythonVersionFile == "" {
		p.PythonVersionFile = d.PythonVersionFile
	}
	if p.Requirements == "" {
		p.Requirements = d.Requirements
	}
	if p.Port == 0 {
		p.Port = d.Port
	}
	if p.DB.Path == "" {
		p.DB.Path = d.DB.Path
	}
	if len(p.CleanGlobs) == 0 {
		p.CleanGlobs = d.CleanGlobs
	}
	if len(p.TodoTags) == 0 {
		p.TodoTags = d.TodoTags
	}
}
