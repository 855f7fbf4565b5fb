package stages

import (
	"infini.sh/taskchain/core/chain"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/errors"
)

// SumReducer adds up the values of each group and emits one record per key.
type SumReducer struct {
}

func (r *SumReducer) Reduce(ctx *chain.Context, key interface{}, values chain.ValueIterator, out chain.Collector) error {
	var total float64
	for v := range values.Iter() {
		n, err := toFloat(v)
		if err != nil {
			return errors.Wrapf(err, "sum reducer, key %v", key)
		}
		total += n
	}
	return out.Collect(chain.Record{Key: key, Value: total})
}

func init() {
	chain.RegisterReducerPlugin("sum", func(cfg *config.Properties) (chain.Reducer, error) {
		return &SumReducer{}, nil
	})
}
