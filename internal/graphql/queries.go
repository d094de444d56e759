package graphql

// Probe queries. Each selects the smallest document that proves the capability.
const (
	TypenameQuery    = "{ __typename }"
	ServiceSDLQuery  = "{ _service { sdl } }"
	SchemaTypesQuery = "{ __schema { types { name } } }"
)
