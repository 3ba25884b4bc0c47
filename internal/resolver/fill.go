package resolver

import (
	"github.com/dshills/ursa/internal/bear"
	"github.com/dshills/ursa/internal/config"
	"github.com/dshills/ursa/internal/output"
)

// fillSection asks the interactor for every setting the given bears require
// that the section cannot resolve, and stores the answers as explicit
// settings. The section is mutated in place.
//
// Requests are issued in a stable order - bear discovery order, then
// requirement declaration order - so interactive prompts are reproducible.
// A setting needed by several bears is requested once, naming all of them.
//
// Completion is an offer, not an obligation: a non-answering interactor
// leaves the setting absent, and the bear that needs it fails later when it
// actually reads the value. Only a failure of the interaction transport
// itself is an error.
func fillSection(section *config.Section, bears []bear.Descriptor, interactor output.Interactor) error {
	var requests []output.SettingRequest
	index := make(map[string]int)

	for _, b := range bears {
		for _, req := range b.Requirements {
			key := config.NormalizeName(req.Name)
			if _, ok := section.Get(key); ok {
				// Present explicitly or through the defaults fallback.
				continue
			}

			if i, ok := index[key]; ok {
				requests[i].Bears = append(requests[i].Bears, b.Name)
				if requests[i].Help == "" {
					requests[i].Help = req.Description
				}
				continue
			}

			index[key] = len(requests)
			requests = append(requests, output.SettingRequest{
				Key:   key,
				Bears: []string{b.Name},
				Help:  req.Description,
			})
		}
	}

	if len(requests) == 0 {
		return nil
	}

	answers, err := interactor.AcquireSettings(requests)
	if err != nil {
		return err
	}

	for _, req := range requests {
		if value, ok := answers[req.Key]; ok {
			section.Set(req.Key, value)
		}
	}

	return nil
}
