package rbac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Action is a capability verb checked against the policy table.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Resource identifies an entity type in the policy table.
type Resource string

const (
	ResourceLeads        Resource = "leads"
	ResourceContacts     Resource = "contacts"
	ResourceDeals        Resource = "deals"
	ResourceProducts     Resource = "products"
	ResourceQuotes       Resource = "quotes"
	ResourceTasks        Resource = "tasks"
	ResourceSubsidiaries Resource = "subsidiaries"
	ResourceDealers      Resource = "dealers"
	ResourceUsers        Resource = "users"
)

// BusinessResources are the entity types every sales role works with.
var BusinessResources = []Resource{
	ResourceLeads,
	ResourceContacts,
	ResourceDeals,
	ResourceProducts,
	ResourceQuotes,
	ResourceTasks,
}

// OrganizationalResources are managed centrally and read-only below admin.
var OrganizationalResources = []Resource{
	ResourceSubsidiaries,
	ResourceDealers,
}

var allActions = []Action{ActionView, ActionCreate, ActionEdit, ActionDelete}

// Policy is the immutable role x resource x action capability table.
// It is consulted before any ownership logic; a role without the
// capability never reaches a record-level check.
type Policy struct {
	table map[Role]map[Resource]map[Action]bool
}

// DefaultPolicy builds the built-in capability table:
// admins get everything, managers get full CRUD on business entities and
// read-only access to organizational ones, reps get business CRUD only.
// User management is admin-only.
func DefaultPolicy() *Policy {
	p := &Policy{table: map[Role]map[Resource]map[Action]bool{}}

	for _, res := range append(append([]Resource{}, BusinessResources...), ResourceSubsidiaries, ResourceDealers, ResourceUsers) {
		p.grant(RoleAdmin, res, allActions...)
	}
	for _, res := range BusinessResources {
		p.grant(RoleSalesManager, res, allActions...)
		p.grant(RoleSalesRep, res, allActions...)
	}
	for _, res := range OrganizationalResources {
		p.grant(RoleSalesManager, res, ActionView)
	}

	return p
}

func (p *Policy) grant(role Role, resource Resource, actions ...Action) {
	if p.table[role] == nil {
		p.table[role] = map[Resource]map[Action]bool{}
	}
	if p.table[role][resource] == nil {
		p.table[role][resource] = map[Action]bool{}
	}
	for _, a := range actions {
		p.table[role][resource][a] = true
	}
}

// IsPermitted reports whether the role holds the capability at all,
// independent of any specific record. Unknown roles are denied everything.
func (p *Policy) IsPermitted(role Role, action Action, resource Resource) bool {
	resources, ok := p.table[NormalizeRole(string(role))]
	if !ok {
		return false
	}
	actions, ok := resources[resource]
	if !ok {
		return false
	}
	return actions[action]
}

// policyFile is the YAML shape of a policy override file.
type policyFile struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}

// LoadPolicy reads a YAML override file on top of the default table.
// For each role/resource pair the file lists, the action set replaces the
// built-in one; everything the file omits keeps its default. An empty path
// returns the default table.
func LoadPolicy(path string) (*Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}

	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}

	for rawRole, resources := range file.Roles {
		role := NormalizeRole(rawRole)
		if role == RoleUnknown {
			return nil, fmt.Errorf("policy file references unknown role %q", rawRole)
		}
		for rawResource, rawActions := range resources {
			resource := Resource(rawResource)
			if p.table[role] == nil {
				p.table[role] = map[Resource]map[Action]bool{}
			}
			p.table[role][resource] = map[Action]bool{}
			for _, rawAction := range rawActions {
				p.table[role][resource][Action(rawAction)] = true
			}
		}
	}

	return p, nil
}
