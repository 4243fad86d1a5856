package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pthm/pagekit"
	"github.com/pthm/pagekit/lib/config"
	"github.com/pthm/pagekit/lib/dom"
)

var errUsage = errors.New("invalid usage, run pagekit help")

type common struct {
	flags   *pflag.FlagSet
	cfgPath string
	targets []string
}

func newCommon(name string) *common {
	c := &common{flags: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	c.flags.StringVar(&c.cfgPath, "config", "", "configuration file")
	c.flags.StringArrayVar(&c.targets, "target", nil, "element selector (repeatable)")
	config.RegisterFlags(c.flags)
	return c
}

func (c *common) parse(args []string) (config.Config, error) {
	if err := c.flags.Parse(args); err != nil {
		return config.Config{}, err
	}
	return config.Load(c.cfgPath, c.flags)
}

// target turns the --target values into a descriptor: one selector stays
// single, several become a collection.
func (c *common) target() (pagekit.Target, error) {
	switch len(c.targets) {
	case 0:
		return nil, fmt.Errorf("%w: --target is required", errUsage)
	case 1:
		return pagekit.From(c.targets[0]), nil
	}
	return pagekit.From(c.targets), nil
}

func openDocument(path string) (*dom.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

func runApply(args []string, stdout io.Writer) error {
	c := newCommon("apply")
	var className, out string
	c.flags.StringVar(&className, "class", "", "class removed by remove-parent-class")
	c.flags.StringVar(&out, "out", "", "output file")

	cfg, err := c.parse(args)
	if err != nil {
		return err
	}
	if c.flags.NArg() != 2 {
		return fmt.Errorf("%w: apply needs an action and a file", errUsage)
	}
	action, path := c.flags.Arg(0), c.flags.Arg(1)

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	tk := pagekit.New(doc, cfg.Options()...)

	if action == "datepicker" {
		if _, err := tk.DatePicker(pagekit.DefaultDatePicker()); err != nil {
			return err
		}
	} else {
		target, err := c.target()
		if err != nil {
			return err
		}
		switch action {
		case "disable":
			err = tk.Disable(target)
		case "enable":
			err = tk.Enable(target)
		case "show":
			err = tk.Show(target)
		case "hide":
			err = tk.Hide(target)
		case "allow-decimal":
			err = tk.AllowDecimal(target)
		case "remove-parent-class":
			if className == "" {
				return fmt.Errorf("%w: remove-parent-class needs --class", errUsage)
			}
			err = tk.RemoveParentClass(target, className)
		default:
			return fmt.Errorf("%w: unknown action %q", errUsage, action)
		}
		if err != nil {
			return err
		}
	}

	if out == "" {
		return doc.Render(stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := doc.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runValue(args []string, stdout io.Writer) error {
	c := newCommon("value")
	var kind string
	c.flags.StringVar(&kind, "format", "raw", "raw, float, decimal or number")

	cfg, err := c.parse(args)
	if err != nil {
		return err
	}
	if c.flags.NArg() != 1 {
		return fmt.Errorf("%w: value needs a file", errUsage)
	}

	doc, err := openDocument(c.flags.Arg(0))
	if err != nil {
		return err
	}
	target, err := c.target()
	if err != nil {
		return err
	}

	tk := pagekit.New(doc, cfg.Options()...)
	var result string
	switch kind {
	case "raw":
		result = tk.ExtractValue(target)
	case "float":
		result = pagekit.Number(tk.ToFloat(target)).String()
	case "decimal":
		result = tk.ToDecimal(target).String()
	case "number":
		result = tk.ToThousandsGrouped(target).String()
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, kind)
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func runFormat(args []string, stdout io.Writer) error {
	c := newCommon("format")
	cfg, err := c.parse(args)
	if err != nil {
		return err
	}
	if c.flags.NArg() < 2 {
		return fmt.Errorf("%w: format needs a kind and a value", errUsage)
	}
	kind := c.flags.Arg(0)
	value := strings.Join(c.flags.Args()[1:], " ")

	tk := pagekit.New(nil, cfg.Options()...)
	var result string
	switch kind {
	case "float":
		result = pagekit.Number(pagekit.ParseFloat(value)).String()
	case "decimal":
		result = tk.ToDecimal(pagekit.Literal(pagekit.ParseFloat(value))).String()
	case "number":
		if pagekit.IsEmpty(value) {
			result = pagekit.Number(0).String()
		} else {
			result = pagekit.GroupThousands(value)
		}
	case "ucwords":
		result = pagekit.CapitalizeWords(value)
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, kind)
	}
	_, err = fmt.Fprintln(stdout, result)
	return err
}

func runURL(args []string, stdout io.Writer) error {
	c := newCommon("url")
	var admin bool
	c.flags.BoolVar(&admin, "admin", false, "use the admin root")

	cfg, err := c.parse(args)
	if err != nil {
		return err
	}
	if c.flags.NArg() != 1 {
		return fmt.Errorf("%w: url needs a path", errUsage)
	}

	urls := cfg.URLs()
	link := urls.Site(c.flags.Arg(0))
	if admin {
		link = urls.Admin(c.flags.Arg(0))
	}
	_, err = fmt.Fprintln(stdout, link)
	return err
}
