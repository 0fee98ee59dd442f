package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	vpackVersion = "1.0.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	vpack := NewAppBuild("vpack", "cmd/vpack", vpackVersion)
	vpack.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", vpackVersion).
			CgoEnabled(false)
	})
	vpack.Variant("windows", "amd64")
	vpack.Variant("linux", "amd64")
	vpack.Variant("linux", "arm64")
	vpack.Variant("darwin", "amd64")
	vpack.Variant("darwin", "arm64")
	b.ImportApp(vpack)

	b.Execute()
}
