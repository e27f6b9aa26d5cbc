package gomap

import (
	"reflect"
	"strings"
)

const tagName = "rmap"

type fieldOpt struct {
	name      string
	index     int
	omitEmpty bool
}

// fieldOpts lists the exported, untagged-out fields of struct type ty.
func fieldOpts(ty reflect.Type) []fieldOpt {
	n := ty.NumField()
	res := make([]fieldOpt, 0, n)
	for i := range n {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		opt := fieldOpt{name: f.Name, index: i}
		name, rest, _ := strings.Cut(tag, ",")
		if name != "" {
			opt.name = name
		}
		for _, o := range strings.Split(rest, ",") {
			if o == "omitempty" {
				opt.omitEmpty = true
			}
		}
		res = append(res, opt)
	}
	return res
}
