package slotmap

import (
	"github.com/figmap-dev/figmap/pkg/classify"
	"github.com/figmap-dev/figmap/pkg/design"
)

// containerKinds is the node-kind set for slots expecting a frame-like node.
//
//nolint:gochecknoglobals // static table.
var containerKinds = []design.Kind{
	design.KindFrame, design.KindGroup, design.KindComponent, design.KindInstance,
}

// graphicKinds is the node-kind set for icon/line-like slots.
//
//nolint:gochecknoglobals // static table.
var graphicKinds = []design.Kind{
	design.KindVector, design.KindLine, design.KindRectangle, design.KindEllipse, design.KindBooleanOp,
}

// builtinSchemas returns the slot schemas for the default target component
// library. Within every slot list, order = specificity: narrow-pattern slots
// come before catch-alls because matching consumes candidates in declared
// order.
//
//nolint:funlen,maintidx // flat declarative table, one block per archetype.
func builtinSchemas() []Schema {
	return []Schema{
		{
			Archetype: classify.ArchetypeButton,
			Slots: []Slot{
				{
					Name: "ButtonIcon",
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"icon"}},
						{Kind: SignalNodeKind, Weight: 0.4, Kinds: graphicKinds},
					},
				},
				{
					Name:     "ButtonLabel",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.5, Keywords: []string{"label", "text", "title"}},
						{Kind: SignalText, Weight: 0.5},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeTabs,
			Slots: []Slot{
				{
					Name:     "TabsList",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"list", "bar", "header"}},
						{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"tab", "trigger"}},
						{Kind: SignalPosition, Weight: 0.1, Position: 0},
					},
					Children: []Slot{
						{
							Name:           "TabsTrigger",
							Required:       true,
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"tab", "trigger"}, Exclude: []string{"list"}},
								{Kind: SignalText, Weight: 0.3},
							},
						},
					},
				},
				{
					Name:           "TabsContent",
					Required:       true,
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"content", "panel"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: containerKinds},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeDropdownMenu,
			Slots: []Slot{
				{
					Name:     "DropdownMenuTrigger",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"trigger", "button", "open"}},
						{Kind: SignalChildRole, Weight: 0.2, Keywords: []string{"button", "label", "icon"}},
						{Kind: SignalPosition, Weight: 0.2, Position: 0},
					},
				},
				{
					Name:     "DropdownMenuContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"content", "menu", "list", "items"}},
						{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"item", "option", "separator"}},
						{Kind: SignalNodeKind, Weight: 0.1, Kinds: containerKinds},
					},
					Children: []Slot{
						{
							Name:           "DropdownMenuSeparator",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"separator", "divider"}},
								{Kind: SignalThinSize, Weight: 0.3, MaxThin: 4},
							},
						},
						{
							Name:           "DropdownMenuLabel",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"label", "heading", "title"}},
								{Kind: SignalText, Weight: 0.3},
							},
						},
						{
							Name:           "DropdownMenuItem",
							Required:       true,
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"item", "option"}},
								{Kind: SignalText, Weight: 0.2},
								{Kind: SignalNodeKind, Weight: 0.2, Kinds: containerKinds},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeSelect,
			Slots: []Slot{
				{
					Name:     "SelectTrigger",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"trigger", "button", "field"}},
						{Kind: SignalPosition, Weight: 0.2, Position: 0},
						{Kind: SignalChildRole, Weight: 0.2, Keywords: []string{"value", "placeholder", "chevron", "caret"}},
					},
					Children: []Slot{
						{
							Name: "SelectIcon",
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"chevron", "caret", "arrow", "icon"}},
								{Kind: SignalNodeKind, Weight: 0.3, Kinds: graphicKinds},
							},
						},
						{
							Name: "SelectValue",
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"value", "placeholder", "selected"}},
								{Kind: SignalText, Weight: 0.3},
							},
						},
					},
				},
				{
					Name:     "SelectContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"content", "menu", "list", "options"}},
						{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"item", "option"}},
						{Kind: SignalNodeKind, Weight: 0.1, Kinds: containerKinds},
					},
					Children: []Slot{
						{
							Name:           "SelectItem",
							Required:       true,
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"item", "option"}},
								{Kind: SignalText, Weight: 0.4},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeContextMenu,
			Slots: []Slot{
				{
					Name:     "ContextMenuTrigger",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"trigger", "target", "area"}},
						{Kind: SignalPosition, Weight: 0.2, Position: 0},
						{Kind: SignalNodeKind, Weight: 0.2, Kinds: containerKinds},
					},
				},
				{
					Name:     "ContextMenuContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"content", "menu", "list", "items"}},
						{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"item", "option", "separator"}},
						{Kind: SignalNodeKind, Weight: 0.1, Kinds: containerKinds},
					},
					Children: []Slot{
						{
							Name:           "ContextMenuSeparator",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"separator", "divider"}},
								{Kind: SignalThinSize, Weight: 0.3, MaxThin: 4},
							},
						},
						{
							Name:           "ContextMenuItem",
							Required:       true,
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"item", "option"}},
								{Kind: SignalText, Weight: 0.2},
								{Kind: SignalNodeKind, Weight: 0.2, Kinds: containerKinds},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeAccordion,
			Slots: []Slot{
				{
					Name:           "AccordionItem",
					Required:       true,
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.5, Keywords: []string{"item", "section", "row"}},
						{Kind: SignalChildRole, Weight: 0.25, Keywords: []string{"trigger", "header"}},
						{Kind: SignalChildRole, Weight: 0.25, Keywords: []string{"content", "body"}},
					},
					Children: []Slot{
						{
							Name:     "AccordionTrigger",
							Required: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"trigger", "header", "button"}},
								{Kind: SignalPosition, Weight: 0.2, Position: 0},
								{Kind: SignalText, Weight: 0.1},
							},
						},
						{
							Name:     "AccordionContent",
							Required: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"content", "body", "panel"}},
								{Kind: SignalPosition, Weight: 0.2, Position: PositionLast},
								{Kind: SignalNodeKind, Weight: 0.1, Kinds: containerKinds},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeCollapsible,
			Slots: []Slot{
				{
					Name:     "CollapsibleTrigger",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"trigger", "header", "button"}},
						{Kind: SignalPosition, Weight: 0.2, Position: 0},
						{Kind: SignalText, Weight: 0.1},
					},
				},
				{
					Name:     "CollapsibleContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"content", "body", "panel"}},
						{Kind: SignalPosition, Weight: 0.2, Position: PositionLast},
						{Kind: SignalNodeKind, Weight: 0.1, Kinds: containerKinds},
					},
				},
			},
		},
		{
			// Separator is a leaf archetype: nothing to bind below it.
			Archetype: classify.ArchetypeSeparator,
			Slots:     nil,
		},
		{
			Archetype: classify.ArchetypeAspectRatio,
			Slots: []Slot{
				{
					Name:     "AspectRatioContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.4, Keywords: []string{"content", "media", "image", "video"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: containerKinds},
						{Kind: SignalPosition, Weight: 0.3, Position: 0},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeResizable,
			Slots: []Slot{
				{
					Name:           "ResizableHandle",
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"handle", "grip", "gutter"}},
						{Kind: SignalThinSize, Weight: 0.3, MaxThin: 8},
					},
				},
				{
					Name:           "ResizablePanel",
					Required:       true,
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"panel", "pane"}},
						{Kind: SignalNodeKind, Weight: 0.4, Kinds: containerKinds},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeScrollArea,
			Slots: []Slot{
				{
					Name:           "ScrollBar",
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"scrollbar", "scroll bar", "thumb"}},
						{Kind: SignalThinSize, Weight: 0.3, MaxThin: 12},
					},
				},
				{
					Name:     "ScrollAreaViewport",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"viewport", "content"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: containerKinds},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeDataTable,
			Slots: []Slot{
				{
					Name:     "TableHeader",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"header", "head"}},
						{Kind: SignalPosition, Weight: 0.2, Position: 0},
						{Kind: SignalChildRole, Weight: 0.2, Keywords: []string{"cell", "column", "head"}},
					},
					Children: []Slot{
						{
							Name:           "TableHeaderCell",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"cell", "column", "head"}},
								{Kind: SignalText, Weight: 0.4},
							},
						},
					},
				},
				{
					Name:     "TableBody",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.5, Keywords: []string{"body", "rows"}},
						{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"row"}},
						{Kind: SignalNodeKind, Weight: 0.2, Kinds: containerKinds},
					},
					Children: []Slot{
						{
							Name:           "TableRow",
							Required:       true,
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"row"}},
								{Kind: SignalChildRole, Weight: 0.4, Keywords: []string{"cell", "column"}},
							},
							Children: []Slot{
								{
									Name:           "TableCell",
									Required:       true,
									AllowsMultiple: true,
									Rules: []Rule{
										{Kind: SignalName, Weight: 0.6, Keywords: []string{"cell", "column", "td"}},
										{Kind: SignalText, Weight: 0.4},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeKbd,
			Slots: []Slot{
				{
					Name:           "KbdKey",
					Required:       true,
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.4, Keywords: []string{"key", "cap", "label"}},
						{Kind: SignalText, Weight: 0.6},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeBreadcrumb,
			Slots: []Slot{
				{
					Name:           "BreadcrumbSeparator",
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"separator", "chevron", "slash", "divider"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: graphicKinds},
					},
				},
				{
					Name:           "BreadcrumbItem",
					Required:       true,
					AllowsMultiple: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.5, Keywords: []string{"item", "link", "page", "home"}},
						{Kind: SignalText, Weight: 0.5},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeSidebar,
			Slots: []Slot{
				{
					Name: "SidebarHeader",
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"header", "logo", "brand"}},
						{Kind: SignalPosition, Weight: 0.3, Position: 0},
					},
				},
				{
					Name: "SidebarFooter",
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"footer", "user", "account"}},
						{Kind: SignalPosition, Weight: 0.3, Position: PositionLast},
					},
				},
				{
					Name:     "SidebarContent",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"content", "menu", "nav", "body"}},
						{Kind: SignalChildRole, Weight: 0.4, Keywords: []string{"menu", "group", "item"}},
					},
					Children: []Slot{
						{
							Name:           "SidebarGroup",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"group", "section"}},
								{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"menu", "item"}},
							},
						},
						{
							Name:           "SidebarMenu",
							AllowsMultiple: true,
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.7, Keywords: []string{"menu", "nav", "list"}, Exclude: []string{"item"}},
								{Kind: SignalChildRole, Weight: 0.3, Keywords: []string{"item", "link"}},
							},
							Children: []Slot{
								{
									Name:           "SidebarMenuItem",
									Required:       true,
									AllowsMultiple: true,
									Rules: []Rule{
										{Kind: SignalName, Weight: 0.6, Keywords: []string{"item", "link"}},
										{Kind: SignalText, Weight: 0.2},
										{Kind: SignalChildRole, Weight: 0.2, Keywords: []string{"icon", "label"}},
									},
								},
							},
						},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeSwitch,
			Slots: []Slot{
				{
					Name:     "SwitchThumb",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"thumb", "knob", "handle"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: graphicKinds},
					},
				},
				{
					Name: "SwitchTrack",
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"track", "background", "bg"}},
						{Kind: SignalNodeKind, Weight: 0.3, Kinds: graphicKinds},
					},
				},
			},
		},
		{
			Archetype: classify.ArchetypeTextarea,
			Slots: []Slot{
				{
					Name: "TextareaLabel",
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.7, Keywords: []string{"label", "title"}},
						{Kind: SignalText, Weight: 0.3},
					},
				},
				{
					Name:     "TextareaField",
					Required: true,
					Rules: []Rule{
						{Kind: SignalName, Weight: 0.6, Keywords: []string{"field", "input", "box", "area"}},
						{Kind: SignalNodeKind, Weight: 0.2, Kinds: containerKinds},
						{Kind: SignalPosition, Weight: 0.2, Position: PositionLast},
					},
					Children: []Slot{
						{
							Name: "TextareaPlaceholder",
							Rules: []Rule{
								{Kind: SignalName, Weight: 0.6, Keywords: []string{"placeholder", "value", "text"}},
								{Kind: SignalText, Weight: 0.4},
							},
						},
					},
				},
			},
		},
		{
			// Container is the generic fallback; it maps nothing but must be
			// registered so the pipeline never hard-fails after a fallback
			// classification.
			Archetype: classify.ArchetypeContainer,
			Slots:     nil,
		},
	}
}
