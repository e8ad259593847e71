package config

type CorsConfig interface {
	GetAllowedOrigins() []string
	GetAllowedMethods() []string
	GetAllowedHeaders() []string
}

type Cors struct{}

var _ CorsConfig = Cors{}

// GetAllowedOrigins allows only the dashboard origin. The session cookie is
// credentialed, so a wildcard here would be rejected by browsers anyway.
func (Cors) GetAllowedOrigins() []string {
	return []string{Azure{}.GetFrontendURL()}
}

func (Cors) GetAllowedMethods() []string {
	return []string{"GET", "POST", "PATCH"}
}

func (Cors) GetAllowedHeaders() []string {
	return []string{"Content-Type"}
}
