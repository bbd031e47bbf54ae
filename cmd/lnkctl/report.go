package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Velocidex/ordereddict"
	"gopkg.in/yaml.v3"
)

// entry is one key of a report. Value is a scalar, a report, or a []report.
type entry struct {
	Key   string
	Value any
}

// report is an ordered set of fields rendered as text, JSON or YAML with
// keys in insertion order.
type report []entry

func (r report) add(key string, value any) report {
	return append(r, entry{Key: key, Value: value})
}

// addIf adds key only when ok is set.
func (r report) addIf(ok bool, key string, value any) report {
	if !ok {
		return r
	}
	return r.add(key, value)
}

func (r report) dict() *ordereddict.Dict {
	d := ordereddict.NewDict()
	for _, e := range r {
		switch v := e.Value.(type) {
		case report:
			d.Set(e.Key, v.dict())
		case []report:
			items := make([]*ordereddict.Dict, 0, len(v))
			for _, item := range v {
				items = append(items, item.dict())
			}
			d.Set(e.Key, items)
		default:
			d.Set(e.Key, v)
		}
	}
	return d
}

func (r report) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range r {
		var val *yaml.Node
		switch v := e.Value.(type) {
		case report:
			n, err := v.yamlNode()
			if err != nil {
				return nil, err
			}
			val = n
		case []report:
			val = &yaml.Node{Kind: yaml.SequenceNode}
			for _, item := range v {
				n, err := item.yamlNode()
				if err != nil {
					return nil, err
				}
				val.Content = append(val.Content, n)
			}
		default:
			val = &yaml.Node{}
			if err := val.Encode(v); err != nil {
				return nil, fmt.Errorf("encode %s: %w", e.Key, err)
			}
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// writeText renders r as indented "Key: value" lines.
func (r report) writeText(w io.Writer, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, e := range r {
		switch v := e.Value.(type) {
		case report:
			fmt.Fprintf(w, "%s%s:\n", pad, e.Key)
			v.writeText(w, indent+1)
		case []report:
			fmt.Fprintf(w, "%s%s: (%d)\n", pad, e.Key, len(v))
			for i, item := range v {
				fmt.Fprintf(w, "%s  [%d]\n", pad, i)
				item.writeText(w, indent+2)
			}
		default:
			fmt.Fprintf(w, "%s%s: %v\n", pad, e.Key, v)
		}
	}
}

// render writes r to w in the given format.
func render(w io.Writer, r report, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(r.dict(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		node, err := r.yamlNode()
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		r.writeText(w, 0)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// renderMany renders reports as a JSON array, a YAML sequence, or text
// sections separated by blank lines.
func renderMany(w io.Writer, rs []report, format string) error {
	switch format {
	case "json":
		dicts := make([]*ordereddict.Dict, 0, len(rs))
		for _, r := range rs {
			dicts = append(dicts, r.dict())
		}
		data, err := json.MarshalIndent(dicts, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range rs {
			n, err := r.yamlNode()
			if err != nil {
				return err
			}
			seq.Content = append(seq.Content, n)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(seq); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, r := range rs {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := render(w, r, format); err != nil {
				return err
			}
		}
		return nil
	}
}
