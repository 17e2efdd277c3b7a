package cmd

import (
	"github.com/minepkg/cargo-get/internals/commands"
	"github.com/minepkg/cargo-get/internals/query"
	"github.com/minepkg/cargo-get/internals/versions"
	"github.com/minepkg/cargo-get/pkg/manifest"
	"github.com/spf13/cobra"
)

func legacyFlags() []*legacyFlag {
	return []*legacyFlag{
		{name: "authors", short: "a", query: query.Package(manifest.FieldAuthors)},
		{name: "edition", short: "e", query: query.Package(manifest.FieldEdition)},
		{name: "name", short: "n", query: query.PackageName()},
		{name: "homepage", short: "o", query: query.Package(manifest.FieldHomepage)},
		{name: "keywords", short: "k", query: query.Package(manifest.FieldKeywords)},
		{name: "license", short: "l", query: query.Package(manifest.FieldLicense)},
		{name: "links", short: "i", query: query.Package(manifest.FieldLinks)},
		{name: "description", short: "d", query: query.Package(manifest.FieldDescription)},
		{name: "categories", short: "c", query: query.Package(manifest.FieldCategories)},
	}
}

func newPackageCmds(a *app) []*cobra.Command {
	cmds := []*cobra.Command{
		newFieldCmd(a, &cobra.Command{
			Use:   "package.name",
			Short: "get package name",
		}, query.PackageName()),
	}

	for _, f := range manifest.Fields {
		cmd := &cobra.Command{
			Use:   "package." + f.String(),
			Short: "get package " + f.String(),
		}
		if f == manifest.FieldVersion {
			cmd.Aliases = []string{"version"}
		}
		cmds = append(cmds, newFieldCmd(a, cmd, query.Package(f)))
	}
	return cmds
}

func newWorkspaceCmds(a *app) []*cobra.Command {
	cmds := []*cobra.Command{
		newFieldCmd(a, &cobra.Command{
			Use:   "workspace.members",
			Short: "get workspace members",
		}, query.WorkspaceMembers()),
	}

	for _, f := range manifest.Fields {
		cmd := &cobra.Command{
			Use:   "workspace.package." + f.String(),
			Short: "get workspace template " + f.String(),
		}
		cmds = append(cmds, newFieldCmd(a, cmd, query.WorkspacePackage(f)))
	}
	return cmds
}

// fieldRunner prints a single field
type fieldRunner struct {
	app     *app
	query   query.Query
	version *versionFlags
}

func newFieldCmd(a *app, cmd *cobra.Command, q query.Query) *cobra.Command {
	runner := &fieldRunner{app: a, query: q}
	cmd.Args = cobra.NoArgs

	build := commands.New(cmd, runner)
	if !q.Name && !q.Members && q.Field == manifest.FieldVersion {
		runner.version = addVersionFlags(build.Command)
	}
	return build.Command
}

func (r *fieldRunner) RunE(cmd *cobra.Command, args []string) error {
	q := r.query
	if r.version != nil {
		q = q.WithPart(r.version.part())
	}
	return r.app.print(cmd, q)
}

// versionFlags are the component selectors of the version subcommands
type versionFlags struct {
	full   bool
	pretty bool
	major  bool
	minor  bool
	patch  bool
	build  bool
	pre    bool
}

func addVersionFlags(cmd *cobra.Command) *versionFlags {
	v := &versionFlags{}
	flags := cmd.Flags()
	flags.BoolVar(&v.full, "full", false, "get full version")
	flags.BoolVar(&v.pretty, "pretty", false, "get pretty version eg. v1.2.3")
	flags.BoolVar(&v.major, "major", false, "get major part")
	flags.BoolVar(&v.minor, "minor", false, "get minor part")
	flags.BoolVar(&v.patch, "patch", false, "get patch part")
	flags.BoolVar(&v.build, "build", false, "get build part")
	flags.BoolVar(&v.pre, "pre", false, "get pre-release part")
	if err := flags.MarkHidden("full"); err != nil {
		panic(err)
	}
	cmd.MarkFlagsMutuallyExclusive("full", "pretty", "major", "minor", "patch", "build", "pre")
	return v
}

func (v *versionFlags) part() versions.Part {
	switch {
	case v.full:
		return versions.PartFull
	case v.pretty:
		return versions.PartPretty
	case v.major:
		return versions.PartMajor
	case v.minor:
		return versions.PartMinor
	case v.patch:
		return versions.PartPatch
	case v.build:
		return versions.PartBuild
	case v.pre:
		return versions.PartPre
	default:
		return versions.PartDefault
	}
}
