package dms_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDMS(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DMS Client Suite")
}
