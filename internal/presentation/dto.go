package presentation

// SourcesDTO represents the validated source list for presentation
type SourcesDTO struct {
	Sources []string `json:"sources"`
}

// DefaultsDTO represents the .txt files of one source for presentation
type DefaultsDTO struct {
	Source string   `json:"source"`
	Files  []string `json:"files"`
}

// ResolvedPathDTO represents a resolved data file path for presentation
type ResolvedPathDTO struct {
	Source   string `json:"source"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// FromSources wraps a source list in its DTO.
func FromSources(sources []string) SourcesDTO {
	if sources == nil {
		sources = []string{}
	}
	return SourcesDTO{Sources: sources}
}

// FromDefaults wraps a source's file list in its DTO.
func FromDefaults(source string, files []string) DefaultsDTO {
	if files == nil {
		files = []string{}
	}
	return DefaultsDTO{Source: source, Files: files}
}
