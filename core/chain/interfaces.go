/* Copyright © INFINI Ltd. All rights reserved.
 * web: https://infinilabs.com
 * mail: hello#infini.ltd */

package chain

// Record is an opaque key/value pair flowing through the chain. The engine
// never inspects or converts either field, a mismatch between what one stage
// emits and what the next stage expects surfaces at run time inside the
// receiving handle.
type Record struct {
	Key   interface{} `json:"key"`
	Value interface{} `json:"value"`
}

// Collector accepts the records a stage emits.
type Collector interface {
	Collect(record Record) error
}

// CollectorFunc adapts a plain function to the Collector interface.
type CollectorFunc func(record Record) error

func (f CollectorFunc) Collect(record Record) error {
	return f(record)
}

// ValueIterator iterates over the values grouped under one key, it is what a
// reduce handle consumes for a single group.
type ValueIterator struct {
	values chan interface{}
}

func NewValueIterator(c chan interface{}) ValueIterator {
	return ValueIterator{values: c}
}

// ValuesFrom wraps a fixed sequence of values.
func ValuesFrom(values ...interface{}) ValueIterator {
	c := make(chan interface{}, len(values))
	for _, v := range values {
		c <- v
	}
	close(c)
	return ValueIterator{values: c}
}

// Iter iterates over all the values in the iterator.
func (v ValueIterator) Iter() <-chan interface{} {
	return v.values
}

// Group is one grouped unit of the task input: a key and its values.
type Group struct {
	Key    interface{}
	Values ValueIterator
}

// GroupIterator feeds the reduce stage one group at a time, Next returns
// false once the input is exhausted.
type GroupIterator interface {
	Next() (*Group, bool)
}

// GroupIteratorFunc adapts a plain function to the GroupIterator interface.
type GroupIteratorFunc func() (*Group, bool)

func (f GroupIteratorFunc) Next() (*Group, bool) {
	return f()
}

// GroupsFrom wraps a fixed sequence of groups.
func GroupsFrom(groups ...*Group) GroupIterator {
	i := 0
	return GroupIteratorFunc(func() (*Group, bool) {
		if i >= len(groups) {
			return nil, false
		}
		g := groups[i]
		i++
		return g, true
	})
}

// Reducer is the handle of the reduce stage, invoked once per input group.
// It may emit zero or more records to out.
type Reducer interface {
	Reduce(ctx *Context, key interface{}, values ValueIterator, out Collector) error
}

// Mapper is the handle of a map stage, invoked once per record taken from
// the inbound handoff. It may emit zero or more records to out.
type Mapper interface {
	Map(ctx *Context, record Record, out Collector) error
}
