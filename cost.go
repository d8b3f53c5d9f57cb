package weave

import "time"

// TickDuration is the length of one simulation tick.
const TickDuration = time.Second / 20

// Estimate sums the stats of mods under cfg. Nil modules are ignored.
func Estimate(mods []Module, cfg *Config) Stats {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	var total Stats
	for _, m := range mods {
		if m == nil {
			continue
		}
		total = total.Add(m.Stats(cfg))
	}
	return total
}

// CooldownDuration converts the cooldown ticks of s to a duration.
func (s Stats) CooldownDuration() time.Duration {
	return time.Duration(s.Cooldown) * TickDuration
}
