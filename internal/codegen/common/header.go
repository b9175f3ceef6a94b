package common

import "fmt"

// FileHeader returns the generated-file banner using the given line comment
// prefix, e.g. "//" for TypeScript.
func FileHeader(comment string) (string, error) {
	version, err := GetVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Code generated by reducergen v%s. DO NOT EDIT.\n\n", comment, version), nil
}
