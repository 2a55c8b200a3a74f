package env

import (
	"os"
)

// PodName example: gateway-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// Port is the listening port injected by the hosting platform
func Port() string {
	return os.Getenv("PORT")
}
