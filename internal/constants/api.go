package constants

// Backend resource paths
const (
	PathPropertyTypes = "/api/property-types"
	PathProperties    = "/api/properties"
	PathContacts      = "/api/contact"
)
