package infra

import (
	"errors"
	"os"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// DefaultModel matches config/rbac_model.conf: role inheritance through g,
// "*" in a policy grants every action on the resource.
const DefaultModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && (r.act == p.act || p.act == "*")
`

const DefaultPolicy = `p, viewer, person, read
p, viewer, payslip, read
p, hr, import, write
p, hr, payslip, write
p, admin, payslip, *
p, admin, person, *
g, hr, viewer
g, admin, hr
g, owner, admin
`

// NewEnforcer loads the model and policy files. When neither file exists
// the built in defaults are used.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	if !exists(modelPath) && !exists(policyPath) {
		return NewDefaultEnforcer()
	}
	return casbin.NewEnforcer(modelPath, policyPath)
}

func NewDefaultEnforcer() (*casbin.Enforcer, error) {
	return NewEnforcerFromText(DefaultModel, DefaultPolicy)
}

// NewEnforcerFromText builds an enforcer from a model and CSV policy lines.
func NewEnforcerFromText(modelText, policy string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		switch fields[0] {
		case "p":
			_, err = e.AddPolicy(fields[1:])
		case "g":
			_, err = e.AddGroupingPolicy(fields[1:])
		default:
			err = errors.New("unknown policy type: " + fields[0])
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
