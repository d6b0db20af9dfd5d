package main

import "github.com/MKhiriev/char-archive/cmd/archivectl/commands"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	commands.Execute(buildVersion, buildDate, buildCommit)
}
