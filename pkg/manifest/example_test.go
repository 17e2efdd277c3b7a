package manifest_test

import (
	"fmt"

	"github.com/minepkg/cargo-get/pkg/manifest"
)

// Parse a manifest and read a direct field
func ExampleParse() {
	raw := []byte(`
	[package]
	name = "demo"
	version = "1.2.3-beta+001"
`)
	man, err := manifest.Parse(raw)
	if err != nil {
		panic(err)
	}
	name, _ := man.PackageName()
	version, _ := man.PackageVersion()
	fmt.Println(name)
	fmt.Println(version)
	// Output:
	// demo
	// 1.2.3-beta+001
}

// A package field can defer to the workspace template
func ExampleManifest_PackageValue() {
	raw := []byte(`
	[package]
	name = "member"
	authors = { workspace = true }

	[workspace.package]
	authors = ["Alice", "Bob"]
`)
	man, err := manifest.Parse(raw)
	if err != nil {
		panic(err)
	}
	authors, _ := man.PackageValue(manifest.FieldAuthors)
	fmt.Println(authors.Join(","))
	// Output:
	// Alice,Bob
}
