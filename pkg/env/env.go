package env

import (
	"fmt"
	"os"
	"strings"

	pkgstrings "github.com/klwxsrx/random-coffee-bot/pkg/strings"
)

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

func Parse[T any](key string) (T, error) {
	var blank T
	str, ok := os.LookupEnv(key)
	if !ok {
		return blank, fmt.Errorf("env %s not found", key)
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return blank, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return v, nil
}

func ParseOptional[T any](key string) (*T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	v, err := pkgstrings.ParseTypedValue[T](str)
	if err != nil {
		return nil, fmt.Errorf("env %s has invalid value: %w", key, err)
	}
	return &v, nil
}

func ParseList[T any](key, delimiter string) ([]T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return nil, fmt.Errorf("env %s not found", key)
	}

	strList := strings.Split(str, delimiter)
	resultList := make([]T, 0, len(strList))
	for _, item := range strList {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := pkgstrings.ParseTypedValue[T](item)
		if err != nil {
			return nil, fmt.Errorf("env %s has invalid list value: %w", key, err)
		}
		resultList = append(resultList, v)
	}

	return resultList, nil
}
