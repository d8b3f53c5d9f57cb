package weave

import "errors"

// BuiltinModules returns fresh instances of the built-in modules.
func BuiltinModules() []Module {
	return []Module{
		NewFireball(),
		NewSplitOnHit(),
		NewExplodeOnHit(),
	}
}

// RegisterBuiltinModules registers the built-in modules in r. It must be
// called once during startup, before any cast runs.
func RegisterBuiltinModules(r *Registry) error {
	var errs []error
	for _, m := range BuiltinModules() {
		if err := r.Register(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
