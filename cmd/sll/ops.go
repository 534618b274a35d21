package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qjpcpu/linkedlist/list"
)

const (
	opInsert = "insert"
	opDelete = "delete"
)

var opAliases = map[string]string{
	"insert": opInsert,
	"ins":    opInsert,
	"delete": opDelete,
	"del":    opDelete,
}

// sampleSession is replayed when no operation is given
var sampleSession = []string{
	"insert:a:0",
	"insert:b:1",
	"insert:c:2",
	"insert:z:1",
	"delete:b",
}

type operation struct {
	raw   string
	kind  string
	value string
	index int
}

// parseOperation accepts insert:<value>:<index> or delete:<value>
func parseOperation(s string) (operation, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return operation{}, fmt.Errorf("bad operation %q", s)
	}
	kind, ok := opAliases[strings.ToLower(name)]
	if !ok {
		return operation{}, fmt.Errorf("bad operation %q: unknown kind %q", s, name)
	}
	op := operation{raw: s, kind: kind}
	switch kind {
	case opInsert:
		sep := strings.LastIndex(rest, ":")
		if sep < 0 {
			return operation{}, fmt.Errorf("bad operation %q: missing index", s)
		}
		index, err := strconv.Atoi(rest[sep+1:])
		if err != nil {
			return operation{}, fmt.Errorf("bad operation %q: %w", s, err)
		}
		op.value, op.index = rest[:sep], index
	case opDelete:
		op.value = rest
	}
	return op, nil
}

func parseOperations(args []string) ([]operation, error) {
	ops := make([]operation, 0, len(args))
	for _, arg := range args {
		op, err := parseOperation(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// apply returns the delete result, always true for insert
func (op operation) apply(l *list.LinkedList[string]) bool {
	if op.kind == opDelete {
		return l.Delete(op.value)
	}
	l.Insert(op.value, op.index)
	return true
}
