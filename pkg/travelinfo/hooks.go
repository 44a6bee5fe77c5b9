package travelinfo

import "nstravel/pkg/nsdata"

// Some endpoints return stations in a flattened form with a single "name"
// and a "countryCode" instead of "namen" and "land".
func (s *Station) afterDecode(d *nsdata.Decoder) {
	if s.Namen == nil {
		if name := nsdata.OptField(d, "name", nsdata.AsString); name != nil {
			s.Namen = &StationsNamen{Kort: *name, Middel: *name, Lang: *name}
		}
	}
	if s.Land == nil {
		s.Land = nsdata.OptField(d, "countryCode", nsdata.AsString)
	}
}

// The disruptions API spells the link target "uri".
func (l *Link) afterDecode(d *nsdata.Decoder) {
	if l.URL == nil {
		l.URL = nsdata.OptField(d, "uri", nsdata.AsString)
	}
}

// registerHooks installs the dynamic counterparts of the hooks above.
func registerHooks(reg *nsdata.Registry) {
	reg.SetHook("Station", func(inst *nsdata.Instance, rest *nsdata.Raw, hc *nsdata.HookContext) error {
		if inst.IsAbsent("namen") {
			if name, ok := rest.Take("name"); ok && name != nil {
				s, err := hc.Resolve("name", nsdata.String, name)
				if err != nil {
					return err
				}
				namen, err := hc.Resolve("namen", nsdata.Ref("StationsNamen"), map[string]any{"kort": s, "middel": s, "lang": s})
				if err != nil {
					return err
				}
				if err := inst.Set("namen", namen); err != nil {
					return err
				}
			}
		}
		if inst.IsAbsent("land") {
			if cc, ok := rest.Take("countryCode"); ok && cc != nil {
				land, err := hc.Resolve("countryCode", nsdata.String, cc)
				if err != nil {
					return err
				}
				return inst.Set("land", land)
			}
		}
		return nil
	})

	reg.SetHook("Link", func(inst *nsdata.Instance, rest *nsdata.Raw, hc *nsdata.HookContext) error {
		if inst.IsAbsent("url") {
			if uri, ok := rest.Take("uri"); ok && uri != nil {
				url, err := hc.Resolve("uri", nsdata.String, uri)
				if err != nil {
					return err
				}
				return inst.Set("url", url)
			}
		}
		return nil
	})
}
