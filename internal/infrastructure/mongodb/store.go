package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var (
	_ repository.ExistenceIndexReader = (*Store)(nil)
	_ repository.BulkWriter           = (*Store)(nil)
)

// Store adaptador de los puertos genéricos del almacén documental: índice de
// existencia y escritura por lotes. Las lecturas tipadas por colección viven
// en los adaptadores de repositorio de este mismo paquete.
type Store struct {
	db *mongo.Database
}

// NewStore construye el adaptador sobre un handle de base de datos.
func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// ListIDs carga todos los ids de la colección en un solo escaneo, proyectando
// únicamente _id.
func (s *Store) ListIDs(ctx context.Context, collection string) (map[string]struct{}, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("ids de %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	ids := make(map[string]struct{})
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decodificar id de %s: %w", collection, err)
		}
		ids[doc.ID] = struct{}{}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor de %s: %w", collection, err)
	}
	return ids, nil
}

// Commit confirma un lote de mutaciones. BulkWrite es por colección, así que
// las operaciones se agrupan conservando el orden de acumulación dentro de
// cada colección; las actualizaciones son $set campo a campo, nunca reemplazo
// del documento completo.
func (s *Store) Commit(ctx context.Context, ops []repository.Operation) error {
	grouped := make(map[string][]mongo.WriteModel)
	var order []string
	for _, op := range ops {
		if _, ok := grouped[op.Collection]; !ok {
			order = append(order, op.Collection)
		}
		var m mongo.WriteModel
		switch op.Kind {
		case repository.OpUpdate:
			m = mongo.NewUpdateOneModel().
				SetFilter(bson.M{"_id": op.ID}).
				SetUpdate(bson.M{"$set": bson.M(op.Fields)})
		case repository.OpDelete:
			m = mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": op.ID})
		default:
			return fmt.Errorf("operación desconocida %d en %s", op.Kind, op.Collection)
		}
		grouped[op.Collection] = append(grouped[op.Collection], m)
	}

	for _, col := range order {
		_, err := s.db.Collection(col).BulkWrite(ctx, grouped[col], options.BulkWrite().SetOrdered(true))
		if err != nil {
			return fmt.Errorf("bulk write en %s: %w", col, err)
		}
	}
	return nil
}

// listAll escaneo completo sin filtro. Las colecciones del negocio son
// acotadas (decenas de miles de documentos como máximo) y caben en una sola
// lectura; no se pagina.
func listAll[T any](ctx context.Context, db *mongo.Database, collection string) ([]T, error) {
	cur, err := db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", collection, err)
	}
	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", collection, err)
	}
	return docs, nil
}
