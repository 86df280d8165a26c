package createyamlaction

import "github.com/kobibe/tibco-developer-hub/internal/action"

// Examples returns the documented invocations of the action. Each Input is a
// complete parameter document.
func Examples() []action.Example {
	return []action.Example{
		{
			Description: "Create catalog-info.yaml in the workspace root",
			Input: `outputStructure:
  apiVersion: backstage.io/v1alpha1
  kind: Component
  metadata:
    name: my-service
    description: Imported TIBCO BusinessWorks application
    tags:
      - tibco
      - bwce
  spec:
    type: service
    lifecycle: production
    owner: group:default/integration
`,
		},
		{
			Description: "Create the file inside a sub folder of the workspace",
			Input: `sourcePath: repo/my-service
outputStructure:
  apiVersion: backstage.io/v1alpha1
  kind: Component
  metadata:
    name: my-service
  spec:
    type: service
    lifecycle: experimental
    owner: group:default/integration
`,
		},
		{
			Description: "Stop the task on error and use a custom file name",
			Input: `sourcePath: repo
failOnError: true
outputFile: my-service-api.yaml
outputStructure:
  apiVersion: backstage.io/v1alpha1
  kind: API
  metadata:
    name: my-service-api
  spec:
    type: openapi
    lifecycle: production
    owner: group:default/integration
    definition:
      $text: ./openapi.yaml
`,
		},
	}
}
