package version

// Version is overridden at link time:
//
//	go build -ldflags "-X mirureader/internal/version.Version=v1.2.0" ./cmd/mirureader
var Version = "dev"
