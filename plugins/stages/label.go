package stages

import (
	"fmt"

	"infini.sh/taskchain/core/chain"
	"infini.sh/taskchain/core/config"
)

// LabelMapper rewrites record keys with a fixed prefix.
type LabelMapper struct {
	prefix string
}

func (m *LabelMapper) Map(ctx *chain.Context, record chain.Record, out chain.Collector) error {
	return out.Collect(chain.Record{Key: fmt.Sprintf("%v%v", m.prefix, record.Key), Value: record.Value})
}

func newLabelMapper(cfg *config.Properties) (chain.Mapper, error) {
	return &LabelMapper{prefix: cfg.Get("prefix")}, nil
}

func init() {
	chain.RegisterMapperPlugin("label", chain.MapperConfigChecked(newLabelMapper, chain.RequireProperties("prefix")))
}
