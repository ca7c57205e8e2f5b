package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Role is a stored attribute of the account, assigned once at signup. The
// student email-domain rule is enforced only by the signup hook, never
// re-derived from the address afterwards.
func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("_pb_users_auth_")
		if err != nil {
			return err
		}

		collection.Fields.Add(&core.SelectField{
			Id:        "select1466534506",
			Name:      "role",
			MaxSelect: 1,
			Required:  true,
			Values:    []string{"student", "organizer"},
		})

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("_pb_users_auth_")
		if err != nil {
			return err
		}

		collection.Fields.RemoveByName("role")

		return app.Save(collection)
	})
}
