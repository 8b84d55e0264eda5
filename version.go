package neosearch

// Version of the service, set at build time with
// -ldflags "-X github.com/a-h/neosearch.Version=...".
var Version = "dev"
