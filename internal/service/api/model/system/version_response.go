package system

// VersionResponse /version 응답입니다.
type VersionResponse struct {
	Version     string `json:"version"`
	Commit      string `json:"commit,omitempty"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os,omitempty"`
	Arch        string `json:"arch,omitempty"`
	DirtyBuild  bool   `json:"dirty_build,omitempty"`
}
