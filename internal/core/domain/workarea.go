package domain

// MRB work-area contract variables.
const (
	EnvWorkArea   = "MRB_TOP"
	EnvSourceDir  = "MRB_SOURCE"
	EnvBuildDir   = "MRB_BUILDDIR"
	EnvProject    = "MRB_PROJECT"
	EnvQualifiers = "MRB_QUALS"
	EnvInstallDir = "MRB_INSTALL"

	// Search-path variables layered by the setup modes.
	EnvProducts     = "PRODUCTS"
	EnvFHiCLPath    = "FHICL_FILE_PATH"
	EnvFWSearchPath = "FW_SEARCH_PATH"
)

// WorkArea is a snapshot of the MRB work-area contract taken from an
// Environment.
type WorkArea struct {
	Top        string
	SourceDir  string
	BuildDir   string
	Project    string
	Qualifiers string
}

// WorkAreaFromEnvironment reads the MRB contract variables out of env.
func WorkAreaFromEnvironment(env *Environment) WorkArea {
	return WorkArea{
		Top:        env.Get(EnvWorkArea),
		SourceDir:  env.Get(EnvSourceDir),
		BuildDir:   env.Get(EnvBuildDir),
		Project:    env.Get(EnvProject),
		Qualifiers: env.Get(EnvQualifiers),
	}
}

// Valid reports whether the snapshot describes a usable work area.
func (w WorkArea) Valid() bool {
	return w.Top != ""
}
