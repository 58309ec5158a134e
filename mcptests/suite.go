package mcptests

import (
	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/servicedef"
)

func RunTestSuite(
	params servicedef.ServiceParams,
	info ServiceInfo,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, params, info)

		t.Run("path translation", DoPathTranslationTests)
		t.Run("tool responses", DoToolResponseTests)
		t.Run("filesystem", DoFilesystemTests)
	})
}
