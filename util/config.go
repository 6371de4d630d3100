package util

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// LoadConfig overrides the fields of the struct pointed to by c with the env
// vars prefix+FieldName. Strings are taken verbatim, everything else is
// decoded as json. Fields without env var keep their value unless they are
// zero, which is an error when required is set.
func LoadConfig(c any, prefix string, required bool) error {
	rt, rc := reflect.TypeOf(c).Elem(), reflect.ValueOf(c).Elem()
	for i := 0; i < rt.NumField(); i++ {
		rft := rt.Field(i)
		if !rft.IsExported() {
			continue
		}
		key := prefix + rft.Name
		s, ok := os.LookupEnv(key)
		if !ok && (!required || !rc.Field(i).IsZero()) {
			continue
		} else if !ok {
			return fmt.Errorf("failed to lookup field %q in env", key)
		}
		if rft.Type.Kind() == reflect.String {
			rc.Field(i).SetString(s)
		} else if err := json.Unmarshal([]byte(s), rc.Field(i).Addr().Interface()); err != nil {
			return fmt.Errorf("failed to unmarshal %q(%s) from %q: %w", key, rft.Type, s, err)
		}
	}
	return nil
}
