package stages

import (
	"infini.sh/taskchain/core/chain"
	"infini.sh/taskchain/core/config"
	"infini.sh/taskchain/core/errors"
	"infini.sh/taskchain/core/util"
)

// ScaleMapper multiplies numeric record values by the factor configured for
// its stage, the factor may come from the chain's base configuration or a
// stage overlay.
type ScaleMapper struct {
	factor float64
}

func (m *ScaleMapper) Map(ctx *chain.Context, record chain.Record, out chain.Collector) error {
	n, err := toFloat(record.Value)
	if err != nil {
		return errors.Wrapf(err, "scale mapper, key %v", record.Key)
	}
	return out.Collect(chain.Record{Key: record.Key, Value: n * m.factor})
}

func newScaleMapper(cfg *config.Properties) (chain.Mapper, error) {
	factor, err := util.StringToFloat(cfg.Get("factor"))
	if err != nil {
		return nil, errors.Errorf("invalid factor: %v", cfg.Get("factor"))
	}
	return &ScaleMapper{factor: factor}, nil
}

func init() {
	chain.RegisterMapperPlugin("scale", chain.MapperConfigChecked(newScaleMapper, chain.RequireProperties("factor")))
}
