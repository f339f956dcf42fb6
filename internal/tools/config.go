package tools

import (
	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zenv"
)

type EnvConfig struct {
	TABLE_MCP_QUERY_ROW_LIMIT int
}

// 0 disables the cap, so query returns every matching row.
var configSchema = z.Struct(z.Shape{
	"TABLE_MCP_QUERY_ROW_LIMIT": z.Int().GTE(0).Default(0),
})

func LoadConfig() (EnvConfig, z.ZogIssueMap) {
	config := EnvConfig{}
	issues := configSchema.Parse(zenv.NewDataProvider(), &config)
	return config, issues
}
