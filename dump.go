package errorlog

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Dump writes the contents of v to the sink as one "dump" line per value,
// gated by the enabled flag like LogError. Structs are walked field by
// field (exported only), maps and slices element by element, basic types
// printed directly. Intended for ad-hoc diagnostics next to a logged
// record.
func (s *Service) Dump(v any) {
	if s == nil || !s.initialized.Load() || !s.enabled.Load() {
		return
	}
	logger := s.logger.Load()
	if logger == nil {
		return
	}

	if v == nil {
		logger.Debug().Str("dump", "<nil>").Send()
		return
	}

	visited := make(map[uintptr]bool)
	s.dumpValue(logger, v, "value", visited, 0)
}

func (s *Service) dumpValue(logger *zerolog.Logger, v any, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		logger.Debug().Str("dump", prefix+": <max depth reached>").Send()
		return
	}
	if v == nil {
		logger.Debug().Str("dump", prefix+": <nil>").Send()
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			logger.Debug().Str("dump", prefix+": <nil>").Send()
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				logger.Debug().Str("dump", prefix+": <circular reference>").Send()
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		logger.Debug().Str("dump", fmt.Sprintf("%s: %s {", prefix, typ.Name())).Send()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}
			s.dumpValue(logger, fieldVal.Interface(), prefix+"."+field.Name, visited, depth+1)
		}
		logger.Debug().Str("dump", prefix+": }").Send()

	case reflect.Map:
		logger.Debug().Str("dump", fmt.Sprintf("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())).Send()
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			s.dumpValue(logger, iter.Value().Interface(), prefix+"["+key+"]", visited, depth+1)
		}
		logger.Debug().Str("dump", prefix+": }").Send()

	case reflect.Slice, reflect.Array:
		logger.Debug().Str("dump", fmt.Sprintf("%s: %s (len: %d) {",
			prefix, typ.String(), val.Len())).Send()
		// Cap element output for large collections.
		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elem := val.Index(i)
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			if elem.CanInterface() {
				s.dumpValue(logger, elem.Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxElements {
			logger.Debug().Str("dump", fmt.Sprintf("%s: ... (%d more elements)", prefix, val.Len()-maxElements)).Send()
		}
		logger.Debug().Str("dump", prefix+": }").Send()

	default:
		if val.IsValid() && val.CanInterface() {
			logger.Debug().Str("dump", fmt.Sprintf("%s: %v", prefix, val.Interface())).Send()
		} else {
			logger.Debug().Str("dump", fmt.Sprintf("%s: %v", prefix, v)).Send()
		}
	}
}
