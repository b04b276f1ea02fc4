package usecase

import (
	"context"
	"io"

	"bookmark-manager/internal/bookmark"
	"bookmark-manager/internal/model"
	"bookmark-manager/pkg/netscape"
)

// ExportHTML writes the library as a Netscape bookmark file. Categories and
// sub-categories become nested folders.
func (uc *implUseCase) ExportHTML(ctx context.Context, w io.Writer) error {
	data, err := uc.Export(ctx)
	if err != nil {
		return err
	}

	bySub := make(map[string][]model.Bookmark)
	for _, b := range data.Bookmarks {
		bySub[b.SubCategoryID] = append(bySub[b.SubCategoryID], b)
	}

	root := &netscape.Folder{}
	for _, c := range data.Categories {
		cf := &netscape.Folder{Name: c.Name, AddDate: c.CreatedAt}
		for _, s := range c.SubCategories {
			sf := &netscape.Folder{Name: s.Name, AddDate: s.CreatedAt}
			for _, b := range bySub[s.ID] {
				sf.Links = append(sf.Links, netscape.Link{
					Title:       b.Title,
					URL:         b.URL,
					Description: b.Description,
					Icon:        b.CoverImage,
					Tags:        b.Tags,
					AddDate:     b.CreatedAt,
				})
			}
			cf.Folders = append(cf.Folders, sf)
		}
		root.Folders = append(root.Folders, cf)
	}

	if err := netscape.Render(w, root); err != nil {
		uc.l.Errorf(ctx, "uc.ExportHTML Render: %v", err)
		return err
	}
	return nil
}

// ImportHTML merges a Netscape bookmark file. Top-level folders map to
// categories and their child folders to sub-categories. Deeper folders are
// flattened into the nearest sub-category. Links directly inside a category
// go to its Unsorted sub-category, and links outside any folder go to
// Imported/Unsorted.
func (uc *implUseCase) ImportHTML(ctx context.Context, r io.Reader) (bookmark.ImportResult, error) {
	root, err := netscape.Parse(r)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ImportHTML Parse: %v", err)
		return bookmark.ImportResult{}, bookmark.ErrInvalidPayload
	}

	im := uc.newImporter()
	if len(root.Links) > 0 {
		subID, err := im.unsorted(ctx)
		if err != nil {
			return im.res, err
		}
		if err := im.links(ctx, subID, root.Links); err != nil {
			return im.res, err
		}
	}

	for ci, cf := range root.Folders {
		name := cf.Name
		if name == "" {
			name = bookmark.ImportedCategoryName
		}
		catID, err := im.category(ctx, "", name, ci, 0, cf.AddDate)
		if err != nil {
			return im.res, err
		}
		if catID == "" {
			continue
		}

		if len(cf.Links) > 0 {
			subID, err := im.subCategory(ctx, catID, "", bookmark.UnsortedSubName, len(cf.Folders), 0, cf.AddDate)
			if err != nil {
				return im.res, err
			}
			if err := im.links(ctx, subID, cf.Links); err != nil {
				return im.res, err
			}
		}

		for si, sf := range cf.Folders {
			name := sf.Name
			if name == "" {
				name = bookmark.UnsortedSubName
			}
			subID, err := im.subCategory(ctx, catID, "", name, si, 0, sf.AddDate)
			if err != nil {
				return im.res, err
			}
			if subID == "" {
				continue
			}
			if err := im.links(ctx, subID, flatten(sf)); err != nil {
				return im.res, err
			}
		}
	}

	uc.l.Infof(ctx, "uc.ImportHTML: %+v", im.res)
	return im.res, nil
}

func (im *importer) links(ctx context.Context, subID string, links []netscape.Link) error {
	for _, l := range links {
		b := model.Bookmark{
			Title:       l.Title,
			URL:         l.URL,
			Description: l.Description,
			CoverImage:  l.Icon,
			Tags:        l.Tags,
			CreatedAt:   l.AddDate,
		}
		if err := im.bookmark(ctx, subID, b); err != nil {
			return err
		}
	}
	return nil
}

// flatten collects the links of f and every folder below it.
func flatten(f *netscape.Folder) []netscape.Link {
	links := append([]netscape.Link(nil), f.Links...)
	for _, sub := range f.Folders {
		links = append(links, flatten(sub)...)
	}
	return links
}
